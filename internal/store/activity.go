package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sdg-portal/portal/types"
)

// ActivityRepository handles persistence for activity log entries.
type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, userID *int, message string) error {
	const query = `
		INSERT INTO activities (user_id, message, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, userID, message, time.Now())
	return err
}

// Recent returns the newest entries, limited to limit rows.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]types.Activity, error) {
	const query = `
		SELECT id, user_id, message, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []types.Activity
	for rows.Next() {
		var activity types.Activity
		var userID sql.NullInt64
		if err := rows.Scan(&activity.ID, &userID, &activity.Message, &activity.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := int(userID.Int64)
			activity.UserID = &id
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}
