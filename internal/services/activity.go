package services

import (
	"context"

	"github.com/sdg-portal/portal/types"
)

// ActivityRepository defines persistence operations for activity entries.
type ActivityRepository interface {
	Create(ctx context.Context, userID *int, message string) error
	Recent(ctx context.Context, limit int) ([]types.Activity, error)
}

// ActivityService appends to and reads the activity feed.
type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Log appends an entry attributed to actorID (nil when the actor is
// unknown). It is fire-and-forget: the repository error is discarded so a
// logging failure can never fail the operation that triggered it.
func (s *ActivityService) Log(ctx context.Context, actorID *int, message string) {
	_ = s.repo.Create(ctx, actorID, message)
}

// LogActor is Log with a known actor id.
func (s *ActivityService) LogActor(ctx context.Context, actorID int, message string) {
	s.Log(ctx, &actorID, message)
}

// Recent returns the newest limit entries for the dashboard feed.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]types.Activity, error) {
	return s.repo.Recent(ctx, limit)
}
