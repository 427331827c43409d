package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

// RecordCompletedGameInput is the full submission of a finished game: the
// fixture metadata, the chronological event log and every participating
// player's box score.
type RecordCompletedGameInput struct {
	MatchID    string
	Season     string
	MatchDate  time.Time
	Location   string
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
	Events     []match.Event
	StatLines  []match.StatLine
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	coachRepo coach.Repository
	userRepo  user.Repository
	idGen     idgen.Generator
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	coachRepo coach.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		coachRepo: coachRepo,
		userRepo:  userRepo,
		idGen:     idGen,
	}
}

// ListMatches returns every match ordered by date ascending.
func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// RecordCompletedGame persists a finished game in one store operation:
// match row, events, per-player stat lines and cumulative roll-ups.
func (s *MatchService) RecordCompletedGame(ctx context.Context, input RecordCompletedGameInput) (string, error) {
	matchID := strings.TrimSpace(input.MatchID)
	if matchID == "" {
		generated, err := s.idGen.NewID()
		if err != nil {
			return "", fmt.Errorf("generate match id: %w", err)
		}
		matchID = generated
	}

	game := match.CompletedGame{
		MatchID:    matchID,
		Season:     strings.TrimSpace(input.Season),
		MatchDate:  input.MatchDate,
		Location:   strings.TrimSpace(input.Location),
		HomeTeamID: strings.TrimSpace(input.HomeTeamID),
		AwayTeamID: strings.TrimSpace(input.AwayTeamID),
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
		Events:     input.Events,
		StatLines:  input.StatLines,
	}
	if err := game.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.SaveCompletedGame(ctx, game); err != nil {
		return "", fmt.Errorf("save completed game: %w", err)
	}
	return matchID, nil
}

// BookAnalyst reserves a match's analyst slot for the calling user. A match
// with an analyst already booked is a conflict.
func (s *MatchService) BookAnalyst(ctx context.Context, matchID, userID string) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	if u.Role != user.RoleAnalyst {
		return fmt.Errorf("%w: only analysts can book matches", ErrUnauthorized)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.AnalystID != "" {
		return fmt.Errorf("%w: match already has an analyst booked", ErrConflict)
	}

	if err := s.matchRepo.AssignAnalyst(ctx, matchID, u.ID); err != nil {
		return fmt.Errorf("assign analyst: %w", err)
	}
	return nil
}

// ListByAnalyst returns the matches whose analyst slot is booked by the
// calling user, ordered by date ascending.
func (s *MatchService) ListByAnalyst(ctx context.Context, userID string) ([]match.Match, error) {
	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	if u.Role != user.RoleAnalyst {
		return nil, fmt.Errorf("%w: only analysts have booked matches", ErrUnauthorized)
	}

	matches, err := s.matchRepo.ListByAnalyst(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by analyst: %w", err)
	}
	return matches, nil
}

// ListByCoach returns every match involving any team managed by the calling
// coach, ordered by date ascending.
func (s *MatchService) ListByCoach(ctx context.Context, userID string) ([]match.Match, error) {
	c, exists, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get coach by user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no coach profile for user=%s", ErrNotFound, userID)
	}

	teams, err := s.teamRepo.ListByCoach(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by coach: %w", err)
	}
	if len(teams) == 0 {
		return []match.Match{}, nil
	}

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	matches, err := s.matchRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list matches by teams: %w", err)
	}
	return matches, nil
}
