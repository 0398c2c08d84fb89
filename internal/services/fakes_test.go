package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/types"
)

var errStoreDown = errors.New("store down")

type fakeUserRepo struct {
	nextID  int
	users   map[int]types.User
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]types.User{}}
}

func (r *fakeUserRepo) add(user types.User) types.User {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	if r.failAll {
		return types.User{}, errStoreDown
	}
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	if r.failAll {
		return types.User{}, errStoreDown
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]types.User, error) {
	if r.failAll {
		return nil, errStoreDown
	}
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

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	if r.failAll {
		return 0, errStoreDown
	}
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	if r.failAll {
		return 0, errStoreDown
	}
	return len(r.users), nil
}

func (r *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if r.failAll {
		return types.User{}, errStoreDown
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	return r.add(user), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user types.User) (types.User, error) {
	if r.failAll {
		return types.User{}, errStoreDown
	}
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

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	if r.failAll {
		return errStoreDown
	}
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeActivityRepo struct {
	entries []types.Activity
	fail    bool
}

func (r *fakeActivityRepo) Create(_ context.Context, userID *int, message string) error {
	if r.fail {
		return errStoreDown
	}
	r.entries = append(r.entries, types.Activity{
		ID:        len(r.entries) + 1,
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	})
	return nil
}

func (r *fakeActivityRepo) Recent(_ context.Context, limit int) ([]types.Activity, error) {
	if r.fail {
		return nil, errStoreDown
	}
	recent := make([]types.Activity, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.entries[i])
	}
	return recent, nil
}

func (r *fakeActivityRepo) last() types.Activity {
	if len(r.entries) == 0 {
		return types.Activity{}
	}
	return r.entries[len(r.entries)-1]
}

type fakeSuggestionRepo struct {
	nextID int
	clock  time.Time
	items  map[int]types.Suggestion
	fail   bool
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		items: map[int]types.Suggestion{},
	}
}

func (r *fakeSuggestionRepo) Get(_ context.Context, id int) (types.Suggestion, error) {
	if r.fail {
		return types.Suggestion{}, errStoreDown
	}
	item, ok := r.items[id]
	if !ok {
		return types.Suggestion{}, store.ErrNotFound
	}
	return item, nil
}

func (r *fakeSuggestionRepo) List(_ context.Context, status string) ([]types.Suggestion, error) {
	if r.fail {
		return nil, errStoreDown
	}
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

func (r *fakeSuggestionRepo) CountByStatus(_ context.Context, status string) (int, error) {
	if r.fail {
		return 0, errStoreDown
	}
	count := 0
	for _, item := range r.items {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeSuggestionRepo) Create(_ context.Context, suggestion types.Suggestion) (types.Suggestion, error) {
	if r.fail {
		return types.Suggestion{}, errStoreDown
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	suggestion.ID = r.nextID
	suggestion.CreatedAt = r.clock
	r.items[suggestion.ID] = suggestion
	return suggestion, nil
}

func (r *fakeSuggestionRepo) UpdateStatus(_ context.Context, id int, status string) error {
	if r.fail {
		return errStoreDown
	}
	item, ok := r.items[id]
	if !ok {
		return store.ErrNotFound
	}
	item.Status = status
	r.items[id] = item
	return nil
}
