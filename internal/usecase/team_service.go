package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

// TeamProfile is the composite team detail: the club, its coach with user
// identity when known, the roster ordered by jersey number, and every match
// the team is involved in.
type TeamProfile struct {
	Team    team.Team
	Coach   *coach.Coach
	Manager *user.User
	Players []player.Player
	Matches []match.Match
}

type CreateTeamInput struct {
	UserID string
	Name   string
}

type TeamService struct {
	teamRepo   team.Repository
	coachRepo  coach.Repository
	userRepo   user.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewTeamService(
	teamRepo team.Repository,
	coachRepo coach.Repository,
	userRepo user.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		coachRepo:  coachRepo,
		userRepo:   userRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// ListTeams returns all teams, or only the requested ids when the filter is
// non-empty.
func (s *TeamService) ListTeams(ctx context.Context, ids []string) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// CreateTeam registers a new club for the calling coach. Team names are
// unique across the league; the coach row is linked to the new team.
func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)

	if input.UserID == "" {
		return team.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	c, exists, err := s.coachRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get coach by user: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: no coach profile for user=%s", ErrNotFound, input.UserID)
	}
	if c.TeamID != "" {
		return team.Team{}, fmt.Errorf("%w: coach already manages a team", ErrConflict)
	}

	if _, taken, err := s.teamRepo.GetByName(ctx, input.Name); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	} else if taken {
		return team.Team{}, fmt.Errorf("%w: team name %q is already taken", ErrConflict, input.Name)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	created, err := s.teamRepo.Create(ctx, team.Team{
		ID:        teamID,
		Name:      input.Name,
		CoachID:   c.ID,
		IconURL:   "EMPTY",
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	c.TeamID = created.ID
	if _, err := s.coachRepo.Upsert(ctx, c); err != nil {
		return team.Team{}, fmt.Errorf("link coach to team: %w", err)
	}
	return created, nil
}

// GetTeamProfile assembles the composite team detail.
func (s *TeamService) GetTeamProfile(ctx context.Context, teamID string) (TeamProfile, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamProfile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamProfile{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return TeamProfile{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	profile := TeamProfile{Team: t}

	if t.CoachID != "" {
		c, found, err := s.coachRepo.GetByID(ctx, t.CoachID)
		if err != nil {
			return TeamProfile{}, fmt.Errorf("get coach by id: %w", err)
		}
		if found {
			profile.Coach = &c
			if u, ok, err := s.userRepo.GetByID(ctx, c.UserID); err != nil {
				return TeamProfile{}, fmt.Errorf("get coach user: %w", err)
			} else if ok {
				profile.Manager = &u
			}
		}
	}

	players, err := s.playerRepo.List(ctx, []string{teamID})
	if err != nil {
		return TeamProfile{}, fmt.Errorf("list team players: %w", err)
	}
	profile.Players = players

	matches, err := s.matchRepo.ListByTeams(ctx, []string{teamID})
	if err != nil {
		return TeamProfile{}, fmt.Errorf("list team matches: %w", err)
	}
	profile.Matches = matches

	return profile, nil
}

// CoachCheck returns the coach profile behind a user, if any.
func (s *TeamService) CoachCheck(ctx context.Context, userID string) (coach.Coach, error) {
	c, exists, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return coach.Coach{}, fmt.Errorf("get coach by user: %w", err)
	}
	if !exists {
		return coach.Coach{}, fmt.Errorf("%w: no coach profile for user=%s", ErrNotFound, userID)
	}
	return c, nil
}
