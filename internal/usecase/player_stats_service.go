package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
)

type PlayerStatsService struct {
	statsRepo playerstats.Repository
}

func NewPlayerStatsService(statsRepo playerstats.Repository) *PlayerStatsService {
	return &PlayerStatsService{statsRepo: statsRepo}
}

// ListStatLines returns recorded box scores newest first, optionally scoped
// to a match and/or a team.
func (s *PlayerStatsService) ListStatLines(ctx context.Context, filter playerstats.Filter) ([]playerstats.StatLine, error) {
	lines, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stat lines: %w", err)
	}
	return lines, nil
}

func (s *PlayerStatsService) RecordStatLine(ctx context.Context, line playerstats.StatLine) (playerstats.StatLine, error) {
	line.MatchID = strings.TrimSpace(line.MatchID)
	line.PlayerID = strings.TrimSpace(line.PlayerID)
	if line.MatchID == "" || line.PlayerID == "" {
		return playerstats.StatLine{}, fmt.Errorf("%w: match id and player id are required", ErrInvalidInput)
	}

	created, err := s.statsRepo.Insert(ctx, line)
	if err != nil {
		return playerstats.StatLine{}, fmt.Errorf("insert stat line: %w", err)
	}
	return created, nil
}
