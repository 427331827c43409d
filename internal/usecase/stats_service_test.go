package usecase

import (
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func newStatsServiceFixtures(t *testing.T) *StatsService {
	t.Helper()

	userRepo := memory.NewUserRepository(memory.SeedUsers())
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	playerStats := memory.NewPlayerStatsRepository(playerRepo)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo, playerRepo, playerStats)
	statsRepo := memory.NewStatsRepository(userRepo, coachRepo, teamRepo, playerRepo, matchRepo)

	return NewStatsService(statsRepo)
}

func TestStatsService_TeamFullStats_ByTeam(t *testing.T) {
	svc := newStatsServiceFixtures(t)

	full, err := svc.TeamFullStats(t.Context(), TeamStatsQuery{TeamID: memory.TeamIDWarriors})
	if err != nil {
		t.Fatalf("team stats failed: %v", err)
	}
	if full.TeamName != "Golden State Warriors" {
		t.Fatalf("unexpected team name: %s", full.TeamName)
	}
	if full.NumPlayers != 3 || len(full.PlayerStats) != 3 {
		t.Fatalf("unexpected roster aggregate: %+v", full)
	}
	if len(full.LastFiveMatches) != 2 {
		t.Fatalf("unexpected recent matches: %d", len(full.LastFiveMatches))
	}
}

func TestStatsService_TeamFullStats_ByUser(t *testing.T) {
	svc := newStatsServiceFixtures(t)

	full, err := svc.TeamFullStats(t.Context(), TeamStatsQuery{AuthUserID: "auth-coach-02"})
	if err != nil {
		t.Fatalf("team stats by user failed: %v", err)
	}
	if full.TeamName != "Los Angeles Lakers" {
		t.Fatalf("unexpected team name: %s", full.TeamName)
	}
}

func TestStatsService_TeamFullStats_MissingSelector(t *testing.T) {
	svc := newStatsServiceFixtures(t)

	_, err := svc.TeamFullStats(t.Context(), TeamStatsQuery{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatsService_TeamFullStats_UnknownTeam(t *testing.T) {
	svc := newStatsServiceFixtures(t)

	_, err := svc.TeamFullStats(t.Context(), TeamStatsQuery{TeamID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsService_FanDashboard(t *testing.T) {
	svc := newStatsServiceFixtures(t)

	dashboard, err := svc.FanDashboard(t.Context())
	if err != nil {
		t.Fatalf("fan dashboard failed: %v", err)
	}
	if dashboard.TotalTeams != 3 || dashboard.TotalMatches != 3 {
		t.Fatalf("unexpected totals: %+v", dashboard)
	}
	if len(dashboard.Standings) != 3 {
		t.Fatalf("unexpected standings size: %d", len(dashboard.Standings))
	}
	// Warriors won both completed matches and lead the table.
	if dashboard.Standings[0].TeamID != memory.TeamIDWarriors || dashboard.Standings[0].Wins != 2 {
		t.Fatalf("unexpected leader: %+v", dashboard.Standings[0])
	}
	if len(dashboard.RecentMatches) != 2 {
		t.Fatalf("unexpected recent matches: %d", len(dashboard.RecentMatches))
	}
}
