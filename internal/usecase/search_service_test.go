package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func TestSearchService_Search(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	svc := NewSearchService(playerRepo, teamRepo, nil)

	result, err := svc.Search(t.Context(), "warriors")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Teams) != 1 {
		t.Fatalf("unexpected team leg: %+v", result.Teams)
	}
	if len(result.Players) != 0 {
		t.Fatalf("unexpected player leg: %+v", result.Players)
	}
}

func TestSearchService_Search_EmptyTerm(t *testing.T) {
	svc := NewSearchService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(nil), nil)

	_, err := svc.Search(t.Context(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type failingSearchPlayerRepo struct {
	*memory.PlayerRepository
}

func (r *failingSearchPlayerRepo) Search(context.Context, string, int) ([]player.Player, error) {
	return nil, errors.New("search index down")
}

func TestSearchService_Search_FailingLegDegrades(t *testing.T) {
	playerRepo := &failingSearchPlayerRepo{PlayerRepository: memory.NewPlayerRepository(memory.SeedPlayers())}
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	svc := NewSearchService(playerRepo, teamRepo, nil)

	result, err := svc.Search(t.Context(), "lakers")
	if err != nil {
		t.Fatalf("degraded search must not fail: %v", err)
	}
	if result.Players == nil || len(result.Players) != 0 {
		t.Fatalf("failing leg must degrade to empty list, got %+v", result.Players)
	}
	if len(result.Teams) != 1 {
		t.Fatalf("healthy leg must still return, got %+v", result.Teams)
	}
}
