package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
)

const prevMatchesLimit = 5

// MatchDetail is the composed analyst view of one match: metadata, both
// teams (home first), their default lineups, recent form and the full
// event log.
type MatchDetail struct {
	Match           match.Match
	Teams           [2]team.Team
	HomeLineup      []lineup.Entry
	AwayLineup      []lineup.Entry
	HomePrevMatches []match.Match
	AwayPrevMatches []match.Match
	Events          []match.Event
}

// MatchDetailService assembles the composite match view. It is read-only;
// every stage fails fast and no partial composite is ever returned.
type MatchDetailService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	lineupRepo lineup.Repository
}

func NewMatchDetailService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	lineupRepo lineup.Repository,
) *MatchDetailService {
	return &MatchDetailService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		lineupRepo: lineupRepo,
	}
}

func (s *MatchDetailService) GetMatchDetail(ctx context.Context, matchID string) (MatchDetail, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	meta, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return MatchDetail{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	teams, err := s.teamRepo.List(ctx, []string{meta.HomeTeamID, meta.AwayTeamID})
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match teams: %w", err)
	}

	teamsByID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	homeTeam, ok := teamsByID[meta.HomeTeamID]
	if !ok {
		return MatchDetail{}, fmt.Errorf("%w: home team=%s", ErrNotFound, meta.HomeTeamID)
	}
	awayTeam, ok := teamsByID[meta.AwayTeamID]
	if !ok {
		return MatchDetail{}, fmt.Errorf("%w: away team=%s", ErrNotFound, meta.AwayTeamID)
	}

	entries, err := s.lineupRepo.ListByTeams(ctx, []string{meta.HomeTeamID, meta.AwayTeamID})
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match lineups: %w", err)
	}

	homeLineup := make([]lineup.Entry, 0, len(entries))
	awayLineup := make([]lineup.Entry, 0, len(entries))
	for _, entry := range entries {
		switch entry.TeamID {
		case meta.HomeTeamID:
			homeLineup = append(homeLineup, entry)
		case meta.AwayTeamID:
			awayLineup = append(awayLineup, entry)
		}
	}

	// The two recent-form lookups do not depend on each other, so they run
	// concurrently. Either failure still aborts the whole composition.
	var (
		homePrev []match.Match
		awayPrev []match.Match
		homeErr  error
		awayErr  error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		homePrev, homeErr = s.matchRepo.ListRecentCompleted(ctx, meta.HomeTeamID, prevMatchesLimit)
	})
	wg.Go(func() {
		awayPrev, awayErr = s.matchRepo.ListRecentCompleted(ctx, meta.AwayTeamID, prevMatchesLimit)
	})
	wg.Wait()

	if homeErr != nil {
		return MatchDetail{}, fmt.Errorf("get home team recent matches: %w", homeErr)
	}
	if awayErr != nil {
		return MatchDetail{}, fmt.Errorf("get away team recent matches: %w", awayErr)
	}

	events, err := s.matchRepo.ListEvents(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match events: %w", err)
	}

	return MatchDetail{
		Match:           meta,
		Teams:           [2]team.Team{homeTeam, awayTeam},
		HomeLineup:      homeLineup,
		AwayLineup:      awayLineup,
		HomePrevMatches: homePrev,
		AwayPrevMatches: awayPrev,
		Events:          events,
	}, nil
}
