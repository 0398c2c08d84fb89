package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/types"
)

const minPasswordLength = 6

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id int) error
}

// UserService encapsulates account use-cases.
type UserService struct {
	repo     UserRepository
	activity *ActivityService
}

func NewUserService(repo UserRepository, activity *ActivityService) *UserService {
	return &UserService{repo: repo, activity: activity}
}

// RegisterInput is the self-service registration form payload.
type RegisterInput struct {
	Fullname        string
	Email           string
	Password        string
	ConfirmPassword string

	// RequestedRole is honored only when the acting session belongs to
	// an admin; everyone else gets the user role. Empty means the form
	// sent no choice and falls back to user even for admins.
	RequestedRole string
}

// Register creates an account from the registration form. actor is the
// identity bound to the current session, nil for anonymous visitors.
func (s *UserService) Register(ctx context.Context, input RegisterInput, actor *session.Identity) (types.User, error) {
	if input.Password != input.ConfirmPassword {
		return types.User{}, &ValidationError{Message: "Passwords do not match"}
	}
	if len(input.Password) < minPasswordLength {
		return types.User{}, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	role := types.RoleUser
	if actor != nil && actor.IsAdmin() && input.RequestedRole != "" {
		role = input.RequestedRole
	}

	user, err := s.repo.Create(ctx, types.User{
		Fullname: input.Fullname,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		return types.User{}, err
	}

	if actor != nil && actor.IsAdmin() {
		s.activity.LogActor(ctx, actor.UserID,
			fmt.Sprintf("Admin %s created user %s (role=%s)", actor.Fullname, user.Fullname, user.Role))
	} else {
		s.activity.LogActor(ctx, user.ID, fmt.Sprintf("New user registered: %s", user.Fullname))
	}
	return user, nil
}

// Authenticate verifies the credential pair and builds the session
// identity. The stored credential is compared byte for byte; hashing was
// never introduced in the schema this ports.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (session.Identity, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return session.Identity{}, ErrInvalidCredentials
		}
		return session.Identity{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if password != user.Password {
		return session.Identity{}, ErrInvalidCredentials
	}

	return session.Identity{
		UserID:   user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
		Role:     user.Role,
		Initials: session.Initials(user.Fullname),
	}, nil
}

// List returns every account in management-page order together with the
// admin and regular-user totals.
func (s *UserService) List(ctx context.Context) ([]types.User, types.UserCounts, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, types.UserCounts{}, err
	}

	admins, err := s.repo.CountByRole(ctx, types.RoleAdmin)
	if err != nil {
		return nil, types.UserCounts{}, err
	}
	regular, err := s.repo.CountByRole(ctx, types.RoleUser)
	if err != nil {
		return nil, types.UserCounts{}, err
	}

	return users, types.UserCounts{Admins: admins, RegularUsers: regular}, nil
}

// CreateUserInput is the admin add-user form payload.
type CreateUserInput struct {
	Fullname string
	Email    string
	Password string
	Role     string
}

// Create adds an account on behalf of an admin.
func (s *UserService) Create(ctx context.Context, input CreateUserInput, actor session.Identity) (types.User, error) {
	role := input.Role
	if role == "" {
		role = types.RoleUser
	}

	user, err := s.repo.Create(ctx, types.User{
		Fullname: input.Fullname,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		return types.User{}, err
	}

	s.activity.LogActor(ctx, actor.UserID,
		fmt.Sprintf("Admin %s added user %s (role=%s)", actor.Fullname, user.Fullname, user.Role))
	return user, nil
}

// UpdateUserInput is the admin edit-user form payload. Password is applied
// only when non-empty; the other fields always overwrite.
type UpdateUserInput struct {
	Fullname string
	Email    string
	Password string
	Role     string
}

// Update modifies the target account. Admins may not touch their own
// account here: allowing it would make it possible to demote the last
// admin and lock everyone out.
func (s *UserService) Update(ctx context.Context, targetID int, input UpdateUserInput, actor session.Identity) error {
	if targetID == actor.UserID {
		return ErrSelfAction
	}

	role := input.Role
	if role == "" {
		role = types.RoleUser
	}

	// Previous state feeds the activity message only; a missing row is
	// tolerated here and surfaces from the update below.
	prev, _ := s.repo.GetByID(ctx, targetID)

	if _, err := s.repo.Update(ctx, types.User{
		ID:       targetID,
		Fullname: input.Fullname,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	}); err != nil {
		return err
	}

	if prev.Role != "" && prev.Role != role {
		s.activity.LogActor(ctx, actor.UserID,
			fmt.Sprintf("Admin %s changed role of %s from %s to %s", actor.Fullname, prev.Fullname, prev.Role, role))
	} else {
		s.activity.LogActor(ctx, actor.UserID,
			fmt.Sprintf("Admin %s updated user %s (id=%d)", actor.Fullname, input.Fullname, targetID))
	}
	return nil
}

// Delete removes the target account, rejecting self-deletion.
func (s *UserService) Delete(ctx context.Context, targetID int, actor session.Identity) error {
	if targetID == actor.UserID {
		return ErrSelfAction
	}

	// Name the account in the log entry before the row disappears.
	target, _ := s.repo.GetByID(ctx, targetID)

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.activity.LogActor(ctx, actor.UserID,
		fmt.Sprintf("Admin %s deleted user %s (id=%d)", actor.Fullname, target.Fullname, targetID))
	return nil
}
