package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sdg-portal/portal/types"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT id, fullname, email, password, role
		FROM users
		WHERE id = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Fullname,
		&user.Email,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT id, fullname, email, password, role
		FROM users
		WHERE email = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Fullname,
		&user.Email,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// List returns all users ordered by role descending then name ascending,
// the order the management page displays.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT id, fullname, email, password, role
		FROM users
		ORDER BY role DESC, fullname`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var user types.User
		if err := rows.Scan(
			&user.ID,
			&user.Fullname,
			&user.Email,
			&user.Password,
			&user.Role,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CountByRole returns the number of users holding the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE role = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, role).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	const query = `
		INSERT INTO users (fullname, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.Fullname,
		user.Email,
		user.Password,
		user.Role,
	).Scan(&user.ID); err != nil {
		return types.User{}, translateUniqueViolation(err)
	}
	return user, nil
}

// Update overwrites fullname, email, and role. The password column is
// touched only when user.Password is non-empty.
func (r *UserRepository) Update(ctx context.Context, user types.User) (types.User, error) {
	var (
		result sql.Result
		err    error
	)
	if user.Password != "" {
		const query = `
			UPDATE users
			SET fullname = $1,
				email = $2,
				password = $3,
				role = $4
			WHERE id = $5`
		result, err = r.db.ExecContext(ctx, query, user.Fullname, user.Email, user.Password, user.Role, user.ID)
	} else {
		const query = `
			UPDATE users
			SET fullname = $1,
				email = $2,
				role = $3
			WHERE id = $4`
		result, err = r.db.ExecContext(ctx, query, user.Fullname, user.Email, user.Role, user.ID)
	}
	if err != nil {
		return types.User{}, translateUniqueViolation(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, err
	}
	if affected == 0 {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
