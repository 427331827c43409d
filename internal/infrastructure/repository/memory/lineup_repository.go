package memory

import (
	"context"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Entry
}

func NewLineupRepository(entries []lineup.Entry) *LineupRepository {
	r := &LineupRepository{items: make(map[string]lineup.Entry, len(entries))}
	for _, e := range entries {
		r.items[lineupKey(e.PlayerID, e.TeamID)] = e
	}
	return r
}

func (r *LineupRepository) ListByTeam(ctx context.Context, teamID string) ([]lineup.Entry, error) {
	return r.ListByTeams(ctx, []string{teamID})
}

func (r *LineupRepository) ListByTeams(_ context.Context, teamIDs []string) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	out := make([]lineup.Entry, 0, len(r.items))
	for _, e := range r.items {
		if _, ok := wanted[e.TeamID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *LineupRepository) UpdateAssignment(_ context.Context, playerID, teamID string, isStarting bool, position string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := lineupKey(playerID, teamID)
	e, ok := r.items[key]
	if !ok {
		return false, nil
	}
	e.IsStarting = isStarting
	e.Position = position
	r.items[key] = e
	return true, nil
}

func lineupKey(playerID, teamID string) string {
	return playerID + "::" + teamID
}
