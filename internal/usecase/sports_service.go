package usecase

import (
	"context"
	"fmt"
	"strings"
)

// SportsService proxies the external basketball data API behind the
// passthrough endpoints.
type SportsService struct {
	provider SportsDataProvider
}

func NewSportsService(provider SportsDataProvider) *SportsService {
	return &SportsService{provider: provider}
}

func (s *SportsService) ListLeagues(ctx context.Context) ([]ExternalLeague, error) {
	leagues, err := s.provider.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *SportsService) ListTeams(ctx context.Context, leagueKey string) ([]ExternalTeam, error) {
	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	teams, err := s.provider.ListTeams(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("list teams for league %s: %w", leagueKey, err)
	}
	return teams, nil
}
