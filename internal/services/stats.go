package services

import (
	"context"
	"math"
	"time"

	"github.com/sdg-portal/portal/types"
)

// StatsRepository is the slice of user persistence the report needs.
type StatsRepository interface {
	Count(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

// StatsService derives the statistics page report from user counts.
// Everything under Simulated is a presentational placeholder, not a
// measurement; the derivations are kept as the original page defined them.
type StatsService struct {
	repo StatsRepository
	now  func() time.Time
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

const (
	simulatedActiveShare = 0.3
	simulatedUserGrowth  = 12
	simulatedDBSizeMB    = 245
)

// Weekly growth multipliers applied in sequence to the first week's figure.
var weeklyGrowthFactors = []float64{1.2, 1.3, 1.15, 1.25, 1.1}

// Compute builds the aggregate report. It requires a signed-in session at
// the boundary but is not admin-restricted.
func (s *StatsService) Compute(ctx context.Context) (types.Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return types.Stats{}, err
	}
	admins, err := s.repo.CountByRole(ctx, types.RoleAdmin)
	if err != nil {
		return types.Stats{}, err
	}
	moderators, err := s.repo.CountByRole(ctx, types.RoleModerator)
	if err != nil {
		return types.Stats{}, err
	}
	regular, err := s.repo.CountByRole(ctx, types.RoleUser)
	if err != nil {
		return types.Stats{}, err
	}

	active := max(1, int(float64(total)*simulatedActiveShare))

	weekly := make([]int, 0, len(weeklyGrowthFactors)+1)
	week := max(1, total/6)
	weekly = append(weekly, week)
	for _, factor := range weeklyGrowthFactors {
		week = max(1, int(float64(week)*factor))
		weekly = append(weekly, week)
	}

	return types.Stats{
		TotalUsers:          total,
		AdminCount:          admins,
		ModeratorCount:      moderators,
		RegularCount:        regular,
		AdminPercentage:     percentage(admins, total),
		ModeratorPercentage: percentage(moderators, total),
		RegularPercentage:   percentage(regular, total),
		Simulated: types.SimulatedStats{
			ActiveSessions:   active,
			ActivePercentage: percentage(active, total),
			UserGrowth:       simulatedUserGrowth,
			DBSizeMB:         simulatedDBSizeMB,
			WeeklyUsers:      weekly,
		},
		LastUpdated: s.now().Format("15:04"),
	}, nil
}

// percentage is zero-safe: an empty user table yields 0 everywhere.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
