package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
)

const maxStarters = 5

// LineupAssignment is one requested slot change for a coach's default lineup.
type LineupAssignment struct {
	PlayerID string
	Position string
}

// SaveLineupInput carries the full desired default lineup for the coach's
// team. Starters and reserves together replace the previous assignments.
type SaveLineupInput struct {
	Starters []LineupAssignment
	Reserves []LineupAssignment
}

// LineupService manages the per-team default lineup. The team is always
// resolved from the calling coach's account, never taken from input.
type LineupService struct {
	coachRepo  coach.Repository
	lineupRepo lineup.Repository
}

func NewLineupService(coachRepo coach.Repository, lineupRepo lineup.Repository) *LineupService {
	return &LineupService{coachRepo: coachRepo, lineupRepo: lineupRepo}
}

// GetDefaultLineup returns the stored default lineup of the team coached by
// the given user.
func (s *LineupService) GetDefaultLineup(ctx context.Context, userID string) ([]lineup.Entry, error) {
	teamID, err := s.resolveTeamID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.lineupRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list lineup by team: %w", err)
	}
	return entries, nil
}

// SaveDefaultLineup validates and applies the requested lineup. Validation
// runs fully before the first write; the writes themselves are applied one
// by one and are not rolled back on a later failure. Only stored entries
// are updated: a player without a lineup entry on the coach's team aborts
// the apply with ErrNotFound.
func (s *LineupService) SaveDefaultLineup(ctx context.Context, userID string, input SaveLineupInput) error {
	teamID, err := s.resolveTeamID(ctx, userID)
	if err != nil {
		return err
	}

	if len(input.Starters) > maxStarters {
		return fmt.Errorf("%w: a lineup allows at most %d starters, got %d", ErrInvalidInput, maxStarters, len(input.Starters))
	}

	seenPositions := make(map[string]struct{}, len(input.Starters))
	for _, starter := range input.Starters {
		pos := strings.TrimSpace(starter.Position)
		if starter.PlayerID == "" || pos == "" {
			return fmt.Errorf("%w: starter entries need a player id and a position", ErrInvalidInput)
		}
		if _, dup := seenPositions[pos]; dup {
			return fmt.Errorf("%w: position %s is assigned to more than one starter", ErrInvalidInput, pos)
		}
		seenPositions[pos] = struct{}{}
	}

	for _, reserve := range input.Reserves {
		if reserve.PlayerID == "" {
			return fmt.Errorf("%w: reserve entries need a player id", ErrInvalidInput)
		}
	}

	for _, starter := range input.Starters {
		matched, err := s.lineupRepo.UpdateAssignment(ctx, starter.PlayerID, teamID, true, strings.TrimSpace(starter.Position))
		if err != nil {
			return fmt.Errorf("assign starter %s: %w", starter.PlayerID, err)
		}
		if !matched {
			return fmt.Errorf("%w: player=%s has no lineup entry on team=%s", ErrNotFound, starter.PlayerID, teamID)
		}
	}
	for _, reserve := range input.Reserves {
		matched, err := s.lineupRepo.UpdateAssignment(ctx, reserve.PlayerID, teamID, false, strings.TrimSpace(reserve.Position))
		if err != nil {
			return fmt.Errorf("assign reserve %s: %w", reserve.PlayerID, err)
		}
		if !matched {
			return fmt.Errorf("%w: player=%s has no lineup entry on team=%s", ErrNotFound, reserve.PlayerID, teamID)
		}
	}
	return nil
}

func (s *LineupService) resolveTeamID(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	c, exists, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get coach by user: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: no coach profile for user=%s", ErrNotFound, userID)
	}
	if c.TeamID == "" {
		return "", fmt.Errorf("%w: coach=%s has no team yet", ErrNotFound, c.ID)
	}
	return c.TeamID, nil
}
