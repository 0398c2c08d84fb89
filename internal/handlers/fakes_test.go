package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/types"
)

type memUserRepo struct {
	nextID int
	users  map[int]types.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int]types.User{}}
}

func (r *memUserRepo) add(user types.User) types.User {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return user
}

func (r *memUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]types.User, error) {
	users := make([]types.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Role != users[j].Role {
			return users[i].Role > users[j].Role
		}
		return users[i].Fullname < users[j].Fullname
	})
	return users, nil
}

func (r *memUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *memUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *memUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	return r.add(user), nil
}

func (r *memUserRepo) Update(_ context.Context, user types.User) (types.User, error) {
	existing, ok := r.users[user.ID]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	for id, other := range r.users {
		if id != user.ID && other.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	if user.Password == "" {
		user.Password = existing.Password
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memActivityRepo struct {
	entries []types.Activity
}

func (r *memActivityRepo) Create(_ context.Context, userID *int, message string) error {
	r.entries = append(r.entries, types.Activity{
		ID:        len(r.entries) + 1,
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	})
	return nil
}

func (r *memActivityRepo) Recent(_ context.Context, limit int) ([]types.Activity, error) {
	recent := make([]types.Activity, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.entries[i])
	}
	return recent, nil
}

type memSuggestionRepo struct {
	nextID int
	clock  time.Time
	items  map[int]types.Suggestion
}

func newMemSuggestionRepo() *memSuggestionRepo {
	return &memSuggestionRepo{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		items: map[int]types.Suggestion{},
	}
}

func (r *memSuggestionRepo) Get(_ context.Context, id int) (types.Suggestion, error) {
	item, ok := r.items[id]
	if !ok {
		return types.Suggestion{}, store.ErrNotFound
	}
	return item, nil
}

func (r *memSuggestionRepo) List(_ context.Context, status string) ([]types.Suggestion, error) {
	var items []types.Suggestion
	for _, item := range r.items {
		if status == "" || item.Status == status {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *memSuggestionRepo) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memSuggestionRepo) Create(_ context.Context, suggestion types.Suggestion) (types.Suggestion, error) {
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	suggestion.ID = r.nextID
	suggestion.CreatedAt = r.clock
	r.items[suggestion.ID] = suggestion
	return suggestion, nil
}

func (r *memSuggestionRepo) UpdateStatus(_ context.Context, id int, status string) error {
	item, ok := r.items[id]
	if !ok {
		return store.ErrNotFound
	}
	item.Status = status
	r.items[id] = item
	return nil
}
