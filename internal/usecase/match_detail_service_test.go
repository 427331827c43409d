package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func newMatchDetailFixtures() (*memory.TeamRepository, *memory.PlayerRepository, *memory.MatchRepository, *memory.LineupRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	statsRepo := memory.NewPlayerStatsRepository(playerRepo)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo, playerRepo, statsRepo)
	lineupRepo := memory.NewLineupRepository([]lineup.Entry{
		{ID: 1, TeamID: memory.TeamIDWarriors, PlayerID: "ply-gsw-30", Position: "PG", IsStarting: true},
		{ID: 2, TeamID: memory.TeamIDWarriors, PlayerID: "ply-gsw-11", Position: "SG", IsStarting: true},
		{ID: 3, TeamID: memory.TeamIDLakers, PlayerID: "ply-lal-06", Position: "SF", IsStarting: true},
	})
	return teamRepo, playerRepo, matchRepo, lineupRepo
}

func TestMatchDetailService_GetMatchDetail(t *testing.T) {
	teamRepo, _, matchRepo, lineupRepo := newMatchDetailFixtures()
	svc := NewMatchDetailService(matchRepo, teamRepo, lineupRepo)

	detail, err := svc.GetMatchDetail(t.Context(), "match-001")
	if err != nil {
		t.Fatalf("get match detail failed: %v", err)
	}

	if detail.Match.ID != "match-001" {
		t.Fatalf("unexpected match id: %s", detail.Match.ID)
	}
	if detail.Teams[0].ID != memory.TeamIDWarriors {
		t.Fatalf("expected home team first, got %s", detail.Teams[0].ID)
	}
	if detail.Teams[1].ID != memory.TeamIDLakers {
		t.Fatalf("expected away team second, got %s", detail.Teams[1].ID)
	}
	if len(detail.HomeLineup) != 2 {
		t.Fatalf("unexpected home lineup size: %d", len(detail.HomeLineup))
	}
	if len(detail.AwayLineup) != 1 {
		t.Fatalf("unexpected away lineup size: %d", len(detail.AwayLineup))
	}
	for _, entry := range detail.HomeLineup {
		if entry.TeamID != memory.TeamIDWarriors {
			t.Fatalf("home lineup contains entry of team %s", entry.TeamID)
		}
	}

	// Both seeded completed matches involve the Warriors, only one involves
	// the Lakers.
	if len(detail.HomePrevMatches) != 2 {
		t.Fatalf("unexpected home prev matches: %d", len(detail.HomePrevMatches))
	}
	if len(detail.AwayPrevMatches) != 1 {
		t.Fatalf("unexpected away prev matches: %d", len(detail.AwayPrevMatches))
	}
	if !detail.HomePrevMatches[0].MatchDate.After(detail.HomePrevMatches[1].MatchDate) {
		t.Fatal("expected home prev matches ordered newest first")
	}
}

func TestMatchDetailService_GetMatchDetail_EventsOrderedByTimestamp(t *testing.T) {
	teamRepo, _, matchRepo, lineupRepo := newMatchDetailFixtures()
	svc := NewMatchDetailService(matchRepo, teamRepo, lineupRepo)

	tipOff := time.Date(2026, 1, 10, 19, 30, 0, 0, time.UTC)
	err := matchRepo.SaveCompletedGame(t.Context(), match.CompletedGame{
		MatchID:    "match-001",
		HomeTeamID: memory.TeamIDWarriors,
		AwayTeamID: memory.TeamIDLakers,
		MatchDate:  tipOff,
		HomeScore:  112,
		AwayScore:  104,
		Events: []match.Event{
			{Timestamp: tipOff.Add(8 * time.Minute), TeamID: memory.TeamIDLakers, Action: "2PT", Points: 2, PlayerID: "ply-lal-06"},
			{Timestamp: tipOff.Add(1 * time.Minute), TeamID: memory.TeamIDWarriors, Action: "3PT", Points: 3, PlayerID: "ply-gsw-30"},
			{Timestamp: tipOff.Add(4 * time.Minute), TeamID: memory.TeamIDWarriors, Action: "FT", Points: 1, PlayerID: "ply-gsw-11"},
		},
	})
	if err != nil {
		t.Fatalf("save completed game failed: %v", err)
	}

	detail, err := svc.GetMatchDetail(t.Context(), "match-001")
	if err != nil {
		t.Fatalf("get match detail failed: %v", err)
	}
	if len(detail.Events) != 3 {
		t.Fatalf("unexpected event count: %d", len(detail.Events))
	}
	for i := 1; i < len(detail.Events); i++ {
		if detail.Events[i].Timestamp.Before(detail.Events[i-1].Timestamp) {
			t.Fatalf("events out of order at %d: %v before %v", i, detail.Events[i].Timestamp, detail.Events[i-1].Timestamp)
		}
	}
	if detail.Events[0].PlayerID != "ply-gsw-30" || detail.Events[2].PlayerID != "ply-lal-06" {
		t.Fatalf("unexpected event order: %+v", detail.Events)
	}
}

func TestMatchDetailService_GetMatchDetail_NotFound(t *testing.T) {
	teamRepo, _, matchRepo, lineupRepo := newMatchDetailFixtures()
	svc := NewMatchDetailService(matchRepo, teamRepo, lineupRepo)

	_, err := svc.GetMatchDetail(t.Context(), "match-999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchDetailService_GetMatchDetail_EmptyID(t *testing.T) {
	teamRepo, _, matchRepo, lineupRepo := newMatchDetailFixtures()
	svc := NewMatchDetailService(matchRepo, teamRepo, lineupRepo)

	_, err := svc.GetMatchDetail(t.Context(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type failingRecentMatchRepo struct {
	*memory.MatchRepository
	failTeamID string
	failErr    error
}

func (r *failingRecentMatchRepo) ListRecentCompleted(ctx context.Context, teamID string, limit int) ([]match.Match, error) {
	if teamID == r.failTeamID {
		return nil, r.failErr
	}
	return r.MatchRepository.ListRecentCompleted(ctx, teamID, limit)
}

func TestMatchDetailService_GetMatchDetail_RecentFormFailureAborts(t *testing.T) {
	teamRepo, _, matchRepo, lineupRepo := newMatchDetailFixtures()
	boom := errors.New("store unavailable")
	svc := NewMatchDetailService(
		&failingRecentMatchRepo{MatchRepository: matchRepo, failTeamID: memory.TeamIDLakers, failErr: boom},
		teamRepo,
		lineupRepo,
	)

	_, err := svc.GetMatchDetail(t.Context(), "match-001")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
