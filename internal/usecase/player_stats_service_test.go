package usecase

import (
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

func newPlayerStatsService(t *testing.T) *PlayerStatsService {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	return NewPlayerStatsService(memory.NewPlayerStatsRepository(playerRepo))
}

func TestPlayerStatsService_RecordAndList(t *testing.T) {
	svc := newPlayerStatsService(t)

	created, err := svc.RecordStatLine(t.Context(), playerstats.StatLine{
		MatchID:  "match-001",
		PlayerID: "ply-gsw-30",
		Points:   31,
		Assists:  8,
	})
	if err != nil {
		t.Fatalf("record stat line failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	lines, err := svc.ListStatLines(t.Context(), playerstats.Filter{MatchID: "match-001"})
	if err != nil {
		t.Fatalf("list stat lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Player.LastName != "Currie" {
		t.Fatalf("expected player join, got %+v", lines[0].Player)
	}
}

func TestPlayerStatsService_ListFiltersByTeam(t *testing.T) {
	svc := newPlayerStatsService(t)

	for _, line := range []playerstats.StatLine{
		{MatchID: "match-001", PlayerID: "ply-gsw-30", Points: 31},
		{MatchID: "match-001", PlayerID: "ply-lal-06", Points: 27},
	} {
		if _, err := svc.RecordStatLine(t.Context(), line); err != nil {
			t.Fatalf("record stat line failed: %v", err)
		}
	}

	lines, err := svc.ListStatLines(t.Context(), playerstats.Filter{TeamID: memory.TeamIDLakers})
	if err != nil {
		t.Fatalf("list stat lines failed: %v", err)
	}
	if len(lines) != 1 || lines[0].PlayerID != "ply-lal-06" {
		t.Fatalf("unexpected team filter result: %+v", lines)
	}
}

func TestPlayerStatsService_RecordStatLine_MissingIDs(t *testing.T) {
	svc := newPlayerStatsService(t)

	_, err := svc.RecordStatLine(t.Context(), playerstats.StatLine{PlayerID: "ply-gsw-30"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
