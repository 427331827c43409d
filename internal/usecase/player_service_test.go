package usecase

import (
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

func TestPlayerService_AssignPlayer(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	svc := NewPlayerService(playerRepo, coachRepo, idgen.NewRandomGenerator())

	assigned, err := svc.AssignPlayer(t.Context(), AssignPlayerInput{UserID: "usr-coach-01", PlayerID: "ply-free-07"})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assigned.TeamID != memory.TeamIDWarriors {
		t.Fatalf("unexpected team after assignment: %s", assigned.TeamID)
	}

	free, err := svc.ListFreeAgents(t.Context())
	if err != nil {
		t.Fatalf("list free agents failed: %v", err)
	}
	if len(free) != 0 {
		t.Fatalf("expected no free agents left, got %d", len(free))
	}
}

func TestPlayerService_AssignPlayer_AlreadyAssigned(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	svc := NewPlayerService(playerRepo, coachRepo, idgen.NewRandomGenerator())

	_, err := svc.AssignPlayer(t.Context(), AssignPlayerInput{UserID: "usr-coach-01", PlayerID: "ply-lal-06"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The assignment reference stays unchanged on conflict.
	p, _, getErr := playerRepo.GetByID(t.Context(), "ply-lal-06")
	if getErr != nil {
		t.Fatalf("get player failed: %v", getErr)
	}
	if p.TeamID != memory.TeamIDLakers {
		t.Fatalf("conflicting assignment must not modify the player, got team %s", p.TeamID)
	}
}

func TestPlayerService_CreatePlayer_Validation(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	_, err := svc.CreatePlayer(t.Context(), CreatePlayerInput{JerseyNumber: 12})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_ListPlayers_JerseyOrder(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	players, err := svc.ListPlayers(t.Context(), []string{memory.TeamIDWarriors})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("unexpected player count: %d", len(players))
	}
	for i := 1; i < len(players); i++ {
		if players[i-1].JerseyNumber > players[i].JerseyNumber {
			t.Fatal("players not ordered by jersey number")
		}
	}
}

func TestPlayerService_CoachPlayers_NoTeam(t *testing.T) {
	coachRepo := memory.NewCoachRepository(nil)
	if _, err := coachRepo.Upsert(t.Context(), seedTeamlessCoach()); err != nil {
		t.Fatalf("seed coach failed: %v", err)
	}
	svc := NewPlayerService(memory.NewPlayerRepository(nil), coachRepo, idgen.NewRandomGenerator())

	_, err := svc.CoachPlayers(t.Context(), "usr-coach-09")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
