package services

import (
	"context"
	"fmt"

	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/types"
)

// StatusFilterAll selects every suggestion regardless of status.
const StatusFilterAll = "all"

// SuggestionRepository defines persistence operations for suggestions.
type SuggestionRepository interface {
	Get(ctx context.Context, id int) (types.Suggestion, error)
	List(ctx context.Context, status string) ([]types.Suggestion, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Create(ctx context.Context, suggestion types.Suggestion) (types.Suggestion, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

// SuggestionService encapsulates the suggestion lifecycle.
type SuggestionService struct {
	repo     SuggestionRepository
	activity *ActivityService
}

func NewSuggestionService(repo SuggestionRepository, activity *ActivityService) *SuggestionService {
	return &SuggestionService{repo: repo, activity: activity}
}

// SubmitInput is the suggestion form payload. The submitter's id and
// display name come from the session, not the form.
type SubmitInput struct {
	Email       string
	SDGCategory string
	Title       string
	Description string
}

// Submit records a new suggestion in the pending state.
func (s *SuggestionService) Submit(ctx context.Context, input SubmitInput, actor session.Identity) (types.Suggestion, error) {
	if input.Email == "" || input.SDGCategory == "" || input.Title == "" || input.Description == "" {
		return types.Suggestion{}, &ValidationError{Message: "All fields are required"}
	}

	suggestion, err := s.repo.Create(ctx, types.Suggestion{
		UserID:      actor.UserID,
		Fullname:    actor.Fullname,
		Email:       input.Email,
		SDGCategory: input.SDGCategory,
		Title:       input.Title,
		Description: input.Description,
		Status:      types.StatusPending,
	})
	if err != nil {
		return types.Suggestion{}, err
	}

	s.activity.LogActor(ctx, actor.UserID,
		fmt.Sprintf("%s submitted a suggestion about %s: %s", actor.Fullname, input.SDGCategory, input.Title))
	return suggestion, nil
}

// List returns suggestions newest first, restricted to statusFilter unless
// it is "all", together with per-status totals that ignore the filter.
func (s *SuggestionService) List(ctx context.Context, statusFilter string) ([]types.Suggestion, types.SuggestionCounts, error) {
	status := statusFilter
	if status == StatusFilterAll || status == "" {
		status = ""
	}

	suggestions, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, types.SuggestionCounts{}, err
	}

	var counts types.SuggestionCounts
	if counts.Pending, err = s.repo.CountByStatus(ctx, types.StatusPending); err != nil {
		return nil, types.SuggestionCounts{}, err
	}
	if counts.Approved, err = s.repo.CountByStatus(ctx, types.StatusApproved); err != nil {
		return nil, types.SuggestionCounts{}, err
	}
	if counts.Rejected, err = s.repo.CountByStatus(ctx, types.StatusRejected); err != nil {
		return nil, types.SuggestionCounts{}, err
	}

	return suggestions, counts, nil
}

// Review moves a suggestion to newStatus and returns the wording of the
// action taken ("approved", "rejected", "marked as pending") for the
// feedback message. Reverting to pending is allowed; no status is terminal.
//
// The prior status is read in a separate statement from the write, so two
// concurrent reviews resolve last-writer-wins.
func (s *SuggestionService) Review(ctx context.Context, id int, newStatus string, actor session.Identity) (string, error) {
	if !types.ValidStatus(newStatus) {
		return "", ErrInvalidStatus
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return "", err
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return "", err
	}

	action := "marked as pending"
	switch newStatus {
	case types.StatusApproved:
		action = "approved"
	case types.StatusRejected:
		action = "rejected"
	}

	s.activity.LogActor(ctx, actor.UserID,
		fmt.Sprintf("Admin %s %s suggestion #%d", actor.Fullname, action, id))
	return action, nil
}
