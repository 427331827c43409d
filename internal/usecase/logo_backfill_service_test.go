package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

type stubResolver struct {
	failTeamID string
}

func (r *stubResolver) ResolveLogo(_ context.Context, teamID string) (TeamLogoResult, error) {
	if teamID == r.failTeamID {
		return TeamLogoResult{}, errors.New("catalog miss")
	}
	return TeamLogoResult{LogoURL: "https://cdn.example.com/teamLogos/" + teamID + ".png"}, nil
}

func TestLogoBackfillService_Backfill(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "t1", Name: "Alpha", IconURL: "EMPTY"},
		{ID: "t2", Name: "Beta", IconURL: "https://cdn.example.com/beta.png"},
		{ID: "t3", Name: "Gamma", IconURL: "/default_team.svg"},
		{ID: "t4", Name: "Delta", IconURL: "NULL"},
	})
	svc := NewLogoBackfillService(teamRepo, &stubResolver{failTeamID: "t4"}, nil)

	result, err := svc.Backfill(t.Context(), BackfillInput{MaxWorkers: 2})
	if err != nil {
		t.Fatalf("backfill failed: %v", err)
	}

	// t2 already has a hosted logo and is skipped entirely.
	if result.TeamCount != 3 {
		t.Fatalf("unexpected target count: %d", result.TeamCount)
	}
	if result.ResolvedCount != 2 || result.FailedCount != 1 || result.PartialCount != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Tasks) != 3 {
		t.Fatalf("unexpected task rows: %d", len(result.Tasks))
	}
	for i := 1; i < len(result.Tasks); i++ {
		if result.Tasks[i-1].TeamID > result.Tasks[i].TeamID {
			t.Fatal("task rows not ordered by team id")
		}
	}
}

func TestLogoBackfillService_Backfill_NothingToDo(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "t1", Name: "Alpha", IconURL: "https://cdn.example.com/alpha.png"},
	})
	svc := NewLogoBackfillService(teamRepo, &stubResolver{}, nil)

	result, err := svc.Backfill(t.Context(), BackfillInput{})
	if err != nil {
		t.Fatalf("backfill failed: %v", err)
	}
	if result.TeamCount != 0 || len(result.Tasks) != 0 {
		t.Fatalf("expected empty run, got %+v", result)
	}
}
