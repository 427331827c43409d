package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func TestLineupService_SaveDefaultLineup(t *testing.T) {
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	lineupRepo := memory.NewLineupRepository(memory.SeedLineups())
	svc := NewLineupService(coachRepo, lineupRepo)

	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-01", SaveLineupInput{
		Starters: []LineupAssignment{
			{PlayerID: "ply-gsw-30", Position: "PG"},
			{PlayerID: "ply-gsw-23", Position: "C"},
		},
		Reserves: []LineupAssignment{
			{PlayerID: "ply-gsw-11", Position: "SG"},
		},
	})
	if err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}

	entries, err := svc.GetDefaultLineup(t.Context(), "usr-coach-01")
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}

	byPlayer := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.TeamID != memory.TeamIDWarriors {
			t.Fatalf("entry stored under team %s", e.TeamID)
		}
		byPlayer[e.PlayerID] = e.IsStarting
		if e.PlayerID == "ply-gsw-23" && e.Position != "C" {
			t.Fatalf("expected position update, got %s", e.Position)
		}
	}
	if !byPlayer["ply-gsw-30"] || !byPlayer["ply-gsw-23"] || byPlayer["ply-gsw-11"] {
		t.Fatalf("unexpected starter flags: %+v", byPlayer)
	}
}

func TestLineupService_SaveDefaultLineup_PlayerWithoutEntry(t *testing.T) {
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	lineupRepo := memory.NewLineupRepository(memory.SeedLineups())
	svc := NewLineupService(coachRepo, lineupRepo)

	// ply-free-07 is a free agent with no entry on the coach's team; the
	// apply must refuse it rather than create a row.
	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-01", SaveLineupInput{
		Starters: []LineupAssignment{
			{PlayerID: "ply-free-07", Position: "PG"},
		},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	entries, listErr := lineupRepo.ListByTeam(t.Context(), memory.TeamIDWarriors)
	if listErr != nil {
		t.Fatalf("list lineup failed: %v", listErr)
	}
	if len(entries) != 3 {
		t.Fatalf("apply must not grow the lineup, found %d entries", len(entries))
	}
	for _, e := range entries {
		if e.PlayerID == "ply-free-07" {
			t.Fatalf("entry created for a player outside the team: %+v", e)
		}
	}
}

func TestLineupService_SaveDefaultLineup_DuplicatePosition(t *testing.T) {
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	lineupRepo := memory.NewLineupRepository(memory.SeedLineups())
	svc := NewLineupService(coachRepo, lineupRepo)

	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-01", SaveLineupInput{
		Starters: []LineupAssignment{
			{PlayerID: "ply-gsw-30", Position: "PG"},
			{PlayerID: "ply-gsw-11", Position: "PG"},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "PG") {
		t.Fatalf("expected error to name the duplicated position, got %v", err)
	}

	entries, listErr := lineupRepo.ListByTeam(t.Context(), memory.TeamIDWarriors)
	if listErr != nil {
		t.Fatalf("list lineup failed: %v", listErr)
	}
	for _, e := range entries {
		if e.PlayerID == "ply-gsw-11" && e.IsStarting && e.Position == "PG" {
			t.Fatalf("validation failure must not write entries: %+v", e)
		}
	}
}

func TestLineupService_SaveDefaultLineup_TooManyStarters(t *testing.T) {
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	lineupRepo := memory.NewLineupRepository(memory.SeedLineups())
	svc := NewLineupService(coachRepo, lineupRepo)

	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-01", SaveLineupInput{
		Starters: []LineupAssignment{
			{PlayerID: "p1", Position: "PG"},
			{PlayerID: "p2", Position: "SG"},
			{PlayerID: "p3", Position: "SF"},
			{PlayerID: "p4", Position: "PF"},
			{PlayerID: "p5", Position: "C"},
			{PlayerID: "p6", Position: "G"},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_SaveDefaultLineup_CoachWithoutTeam(t *testing.T) {
	coachRepo := memory.NewCoachRepository(nil)
	if _, err := coachRepo.Upsert(t.Context(), seedTeamlessCoach()); err != nil {
		t.Fatalf("seed coach failed: %v", err)
	}
	svc := NewLineupService(coachRepo, memory.NewLineupRepository(nil))

	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-09", SaveLineupInput{
		Starters: []LineupAssignment{{PlayerID: "p1", Position: "PG"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func seedTeamlessCoach() coach.Coach {
	return coach.Coach{ID: "coach-09", UserID: "usr-coach-09"}
}

type failingLineupRepo struct {
	*memory.LineupRepository
	failPlayerID string
	failErr      error
}

func (r *failingLineupRepo) UpdateAssignment(ctx context.Context, playerID, teamID string, isStarting bool, position string) (bool, error) {
	if playerID == r.failPlayerID {
		return false, r.failErr
	}
	return r.LineupRepository.UpdateAssignment(ctx, playerID, teamID, isStarting, position)
}

func TestLineupService_SaveDefaultLineup_PartialApplyIsKept(t *testing.T) {
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	boom := errors.New("write failed")
	repo := &failingLineupRepo{
		LineupRepository: memory.NewLineupRepository(memory.SeedLineups()),
		failPlayerID:     "ply-gsw-23",
		failErr:          boom,
	}
	svc := NewLineupService(coachRepo, repo)

	err := svc.SaveDefaultLineup(t.Context(), "usr-coach-01", SaveLineupInput{
		Starters: []LineupAssignment{
			{PlayerID: "ply-gsw-11", Position: "SG"},
			{PlayerID: "ply-gsw-23", Position: "PF"},
		},
		Reserves: []LineupAssignment{
			{PlayerID: "ply-gsw-30", Position: "PG"},
		},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}

	// Assignments made before the failure stay applied; the rest keep
	// their seeded state.
	entries, listErr := repo.ListByTeam(t.Context(), memory.TeamIDWarriors)
	if listErr != nil {
		t.Fatalf("list lineup failed: %v", listErr)
	}
	for _, e := range entries {
		switch e.PlayerID {
		case "ply-gsw-11":
			if !e.IsStarting {
				t.Fatalf("first assignment should stay applied: %+v", e)
			}
		case "ply-gsw-30":
			if !e.IsStarting {
				t.Fatalf("assignments after the failure must not run: %+v", e)
			}
		}
	}
}
