package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

func newMatchServiceFixtures(t *testing.T) (*MatchService, *memory.PlayerRepository, *memory.PlayerStatsRepository) {
	t.Helper()

	userRepo := memory.NewUserRepository(memory.SeedUsers())
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	statsRepo := memory.NewPlayerStatsRepository(playerRepo)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo, playerRepo, statsRepo)

	svc := NewMatchService(matchRepo, teamRepo, coachRepo, userRepo, idgen.NewRandomGenerator())
	return svc, playerRepo, statsRepo
}

func TestMatchService_ListMatches_DateOrder(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	matches, err := svc.ListMatches(t.Context())
	if err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].MatchDate.After(matches[i].MatchDate) {
			t.Fatal("matches not ordered by date ascending")
		}
	}
	if matches[0].HomeTeam == nil || matches[0].AwayTeam == nil {
		t.Fatal("expected participants embedded")
	}
}

func TestMatchService_RecordCompletedGame(t *testing.T) {
	svc, playerRepo, statsRepo := newMatchServiceFixtures(t)

	matchID, err := svc.RecordCompletedGame(t.Context(), RecordCompletedGameInput{
		MatchID:    "match-003",
		Season:     "2025/2026",
		MatchDate:  time.Date(2026, 2, 2, 20, 0, 0, 0, time.UTC),
		Location:   "Crypto.com Arena",
		HomeTeamID: memory.TeamIDLakers,
		AwayTeamID: memory.TeamIDCeltics,
		HomeScore:  118,
		AwayScore:  121,
		Events: []match.Event{
			{Timestamp: time.Date(2026, 2, 2, 20, 5, 0, 0, time.UTC), TeamID: memory.TeamIDLakers, Action: "2PT", Points: 2, PlayerID: "ply-lal-06"},
		},
		StatLines: []match.StatLine{
			{PlayerID: "ply-lal-06", Points: 31, Assists: 8, Rebounds: 7, Blocks: 1, Steals: 2},
		},
	})
	if err != nil {
		t.Fatalf("record game failed: %v", err)
	}
	if matchID != "match-003" {
		t.Fatalf("unexpected match id: %s", matchID)
	}

	// Cumulative roll-up lands on the player record.
	p, _, err := playerRepo.GetByID(t.Context(), "ply-lal-06")
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if p.Points != 31 || p.Assists != 8 {
		t.Fatalf("cumulative stats not rolled up: %+v", p)
	}

	lines, err := statsRepo.List(t.Context(), playerstats.Filter{MatchID: "match-003"})
	if err != nil {
		t.Fatalf("list stat lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one stat line, got %d", len(lines))
	}
}

func TestMatchService_RecordCompletedGame_SameTeams(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	_, err := svc.RecordCompletedGame(t.Context(), RecordCompletedGameInput{
		MatchID:    "match-bad",
		HomeTeamID: memory.TeamIDLakers,
		AwayTeamID: memory.TeamIDLakers,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_BookAnalyst(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	if err := svc.BookAnalyst(t.Context(), "match-003", "usr-analyst-01"); err != nil {
		t.Fatalf("book analyst failed: %v", err)
	}

	// Second booking hits the occupied slot.
	err := svc.BookAnalyst(t.Context(), "match-003", "usr-analyst-01")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMatchService_BookAnalyst_OccupiedSlot(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	err := svc.BookAnalyst(t.Context(), "match-001", "usr-analyst-01")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMatchService_BookAnalyst_NonAnalyst(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	err := svc.BookAnalyst(t.Context(), "match-003", "usr-fan-01")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMatchService_ListByAnalyst(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	// match-001 is seeded with the analyst booked; match-003 gets booked now.
	if err := svc.BookAnalyst(t.Context(), "match-003", "usr-analyst-01"); err != nil {
		t.Fatalf("book analyst failed: %v", err)
	}

	matches, err := svc.ListByAnalyst(t.Context(), "usr-analyst-01")
	if err != nil {
		t.Fatalf("list by analyst failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
	if matches[0].ID != "match-001" || matches[1].ID != "match-003" {
		t.Fatalf("unexpected matches or order: %s, %s", matches[0].ID, matches[1].ID)
	}
}

func TestMatchService_ListByAnalyst_NonAnalyst(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	_, err := svc.ListByAnalyst(t.Context(), "usr-fan-01")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMatchService_ListByCoach(t *testing.T) {
	svc, _, _ := newMatchServiceFixtures(t)

	matches, err := svc.ListByCoach(t.Context(), "usr-coach-01")
	if err != nil {
		t.Fatalf("list by coach failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
}
