package usecase

import (
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func TestHistoryService_Snapshot(t *testing.T) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", FirstName: "A", LastName: "One", JerseyNumber: 1, TeamID: memory.TeamIDWarriors, Points: 120},
		{ID: "p2", FirstName: "B", LastName: "Two", JerseyNumber: 2, TeamID: memory.TeamIDWarriors, Points: 80},
		{ID: "p3", FirstName: "C", LastName: "Three", JerseyNumber: 3, TeamID: memory.TeamIDLakers, Points: 95},
	})
	statsRepo := memory.NewPlayerStatsRepository(playerRepo)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo, playerRepo, statsRepo)

	svc := NewHistoryService(teamRepo, playerRepo, matchRepo)
	snapshot, err := svc.Snapshot(t.Context())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	if snapshot.TotalTeams != 3 || snapshot.TotalPlayers != 3 || snapshot.TotalMatches != 3 {
		t.Fatalf("unexpected summary counts: %+v", snapshot)
	}

	var warriors *HistoryTeam
	for i := range snapshot.Teams {
		if snapshot.Teams[i].Team.ID == memory.TeamIDWarriors {
			warriors = &snapshot.Teams[i]
		}
	}
	if warriors == nil {
		t.Fatal("warriors missing from snapshot")
	}
	if warriors.TotalPoints != 200 {
		t.Fatalf("unexpected summed points: %d", warriors.TotalPoints)
	}
}

func TestHistoryService_Snapshot_UnknownTeamName(t *testing.T) {
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(nil)
	statsRepo := memory.NewPlayerStatsRepository(playerRepo)
	matchRepo := memory.NewMatchRepository([]match.Match{
		{ID: "m1", HomeTeamID: "ghost-a", AwayTeamID: "ghost-b"},
	}, teamRepo, playerRepo, statsRepo)

	svc := NewHistoryService(teamRepo, playerRepo, matchRepo)
	snapshot, err := svc.Snapshot(t.Context())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(snapshot.Matches) != 1 {
		t.Fatalf("unexpected match count: %d", len(snapshot.Matches))
	}
	if snapshot.Matches[0].HomeTeamName != "Unknown" || snapshot.Matches[0].AwayTeamName != "Unknown" {
		t.Fatalf("missing teams must render as Unknown, got %+v", snapshot.Matches[0])
	}
}
