package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

type CreatePlayerInput struct {
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber int
	TeamID       string
	ImageURL     string
}

type AssignPlayerInput struct {
	UserID   string
	PlayerID string
}

type PlayerService struct {
	playerRepo player.Repository
	coachRepo  coach.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, coachRepo coach.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// ListPlayers returns players for the given teams, or every player when the
// filter is empty. Ordering is by jersey number.
func (s *PlayerService) ListPlayers(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return p, nil
}

func (s *PlayerService) ListFreeAgents(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.ListFreeAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list free agents: %w", err)
	}
	return players, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	candidate := player.Player{
		ID:           playerID,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Position:     strings.TrimSpace(input.Position),
		JerseyNumber: input.JerseyNumber,
		TeamID:       strings.TrimSpace(input.TeamID),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		CreatedAt:    s.now().UTC(),
	}
	if err := candidate.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, candidate)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// AssignPlayer moves a free agent onto the calling coach's team. A player
// already under contract is left untouched.
func (s *PlayerService) AssignPlayer(ctx context.Context, input AssignPlayerInput) (player.Player, error) {
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.PlayerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	c, exists, err := s.coachRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get coach by user: %w", err)
	}
	if !exists || c.TeamID == "" {
		return player.Player{}, fmt.Errorf("%w: calling coach has no team", ErrNotFound)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}
	if p.TeamID != "" {
		return player.Player{}, fmt.Errorf("%w: player already belongs to a team", ErrConflict)
	}

	if err := s.playerRepo.AssignTeam(ctx, p.ID, c.TeamID); err != nil {
		return player.Player{}, fmt.Errorf("assign player to team: %w", err)
	}
	p.TeamID = c.TeamID
	return p, nil
}

// CoachPlayers returns the roster of the calling coach's team.
func (s *PlayerService) CoachPlayers(ctx context.Context, userID string) ([]player.Player, error) {
	c, exists, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get coach by user: %w", err)
	}
	if !exists || c.TeamID == "" {
		return nil, fmt.Errorf("%w: calling coach has no team", ErrNotFound)
	}
	return s.ListPlayers(ctx, []string{c.TeamID})
}
