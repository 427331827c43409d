package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, p := range players {
		items[p.ID] = p
	}
	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) List(_ context.Context, teamIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if len(wanted) > 0 {
			if _, ok := wanted[p.TeamID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	sortByJersey(out)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return p, true, nil
}

func (r *PlayerRepository) ListFreeAgents(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.items {
		if p.TeamID == "" {
			out = append(out, p)
		}
	}
	sortByJersey(out)
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) AssignTeam(_ context.Context, playerID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return nil
	}
	p.TeamID = teamID
	r.items[playerID] = p
	return nil
}

func (r *PlayerRepository) Search(_ context.Context, term string, limit int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	matched := make([]player.Player, 0, limit)
	for _, p := range r.items {
		full := strings.ToLower(p.FirstName + " " + p.LastName)
		if strings.Contains(full, needle) {
			matched = append(matched, p)
		}
	}
	sortByJersey(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// addTotals folds a recorded box score into the player's cumulative counters.
func (r *PlayerRepository) addTotals(playerID string, points, assists, rebounds, blocks, steals int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return
	}
	p.Points += points
	p.Assists += assists
	p.Rebounds += rebounds
	p.Blocks += blocks
	p.Steals += steals
	r.items[playerID] = p
}

func sortByJersey(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].JerseyNumber != players[j].JerseyNumber {
			return players[i].JerseyNumber < players[j].JerseyNumber
		}
		return players[i].ID < players[j].ID
	})
}
