package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sdg-portal/portal/types"
)

// SuggestionRepository handles persistence for suggestions.
type SuggestionRepository struct {
	db *sql.DB
}

func NewSuggestionRepository(db *sql.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

func (r *SuggestionRepository) Get(ctx context.Context, id int) (types.Suggestion, error) {
	const query = `
		SELECT id, user_id, fullname, email, sdg_category, title, description, status, created_at
		FROM suggestions
		WHERE id = $1`
	var suggestion types.Suggestion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&suggestion.ID,
		&suggestion.UserID,
		&suggestion.Fullname,
		&suggestion.Email,
		&suggestion.SDGCategory,
		&suggestion.Title,
		&suggestion.Description,
		&suggestion.Status,
		&suggestion.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Suggestion{}, ErrNotFound
		}
		return types.Suggestion{}, err
	}
	return suggestion, nil
}

// List returns suggestions newest first. A non-empty status restricts the
// result to rows with that exact status.
func (r *SuggestionRepository) List(ctx context.Context, status string) ([]types.Suggestion, error) {
	const base = `
		SELECT id, user_id, fullname, email, sdg_category, title, description, status, created_at
		FROM suggestions`

	var (
		rows *sql.Rows
		err  error
	)
	if status != "" {
		rows, err = r.db.QueryContext(ctx, base+` WHERE status = $1 ORDER BY created_at DESC`, status)
	} else {
		rows, err = r.db.QueryContext(ctx, base+` ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []types.Suggestion
	for rows.Next() {
		var suggestion types.Suggestion
		if err := rows.Scan(
			&suggestion.ID,
			&suggestion.UserID,
			&suggestion.Fullname,
			&suggestion.Email,
			&suggestion.SDGCategory,
			&suggestion.Title,
			&suggestion.Description,
			&suggestion.Status,
			&suggestion.CreatedAt,
		); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions, rows.Err()
}

// CountByStatus returns the number of suggestions with the given status.
func (r *SuggestionRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	const query = `SELECT COUNT(*) FROM suggestions WHERE status = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SuggestionRepository) Create(ctx context.Context, suggestion types.Suggestion) (types.Suggestion, error) {
	suggestion.CreatedAt = time.Now()

	const query = `
		INSERT INTO suggestions (user_id, fullname, email, sdg_category, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		suggestion.UserID,
		suggestion.Fullname,
		suggestion.Email,
		suggestion.SDGCategory,
		suggestion.Title,
		suggestion.Description,
		suggestion.Status,
		suggestion.CreatedAt,
	).Scan(&suggestion.ID); err != nil {
		return types.Suggestion{}, err
	}
	return suggestion, nil
}

// UpdateStatus writes the new status in a single statement.
func (r *SuggestionRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	const query = `UPDATE suggestions SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
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
