package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/stats"
)

// TeamStatsQuery selects the aggregation target: a concrete team id, or the
// team coached by the given auth user. Exactly one must be set.
type TeamStatsQuery struct {
	TeamID     string
	AuthUserID string
}

// StatsService fronts the store-computed aggregates.
type StatsService struct {
	statsRepo stats.Repository
}

func NewStatsService(statsRepo stats.Repository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) TeamFullStats(ctx context.Context, query TeamStatsQuery) (stats.TeamFullStats, error) {
	query.TeamID = strings.TrimSpace(query.TeamID)
	query.AuthUserID = strings.TrimSpace(query.AuthUserID)

	switch {
	case query.TeamID != "":
		full, exists, err := s.statsRepo.TeamFullStatsByTeam(ctx, query.TeamID)
		if err != nil {
			return stats.TeamFullStats{}, fmt.Errorf("team stats by team: %w", err)
		}
		if !exists {
			return stats.TeamFullStats{}, fmt.Errorf("%w: team=%s", ErrNotFound, query.TeamID)
		}
		return full, nil
	case query.AuthUserID != "":
		full, exists, err := s.statsRepo.TeamFullStatsByUser(ctx, query.AuthUserID)
		if err != nil {
			return stats.TeamFullStats{}, fmt.Errorf("team stats by user: %w", err)
		}
		if !exists {
			return stats.TeamFullStats{}, fmt.Errorf("%w: no coached team for user", ErrNotFound)
		}
		return full, nil
	default:
		return stats.TeamFullStats{}, fmt.Errorf("%w: team id or auth user id is required", ErrInvalidInput)
	}
}

func (s *StatsService) FanDashboard(ctx context.Context) (stats.FanDashboard, error) {
	dashboard, err := s.statsRepo.FanDashboard(ctx)
	if err != nil {
		return stats.FanDashboard{}, fmt.Errorf("fan dashboard: %w", err)
	}
	return dashboard, nil
}
