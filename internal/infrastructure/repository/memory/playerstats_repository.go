package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	items  []playerstats.StatLine
	nextID int64

	players *PlayerRepository
}

func NewPlayerStatsRepository(players *PlayerRepository) *PlayerStatsRepository {
	return &PlayerStatsRepository{players: players}
}

func (r *PlayerStatsRepository) List(ctx context.Context, filter playerstats.Filter) ([]playerstats.StatLine, error) {
	r.mu.RLock()
	lines := append([]playerstats.StatLine(nil), r.items...)
	r.mu.RUnlock()

	out := make([]playerstats.StatLine, 0, len(lines))
	for _, line := range lines {
		line = r.joinPlayer(ctx, line)
		if filter.MatchID != "" && line.MatchID != filter.MatchID {
			continue
		}
		if filter.TeamID != "" && line.Player.TeamID != filter.TeamID {
			continue
		}
		out = append(out, line)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PlayerStatsRepository) Insert(_ context.Context, item playerstats.StatLine) (playerstats.StatLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, item)
	return item, nil
}

func (r *PlayerStatsRepository) joinPlayer(ctx context.Context, line playerstats.StatLine) playerstats.StatLine {
	if r.players == nil {
		return line
	}
	p, ok, err := r.players.GetByID(ctx, line.PlayerID)
	if err != nil || !ok {
		return line
	}
	line.Player = playerstats.PlayerRef{
		ID:           p.ID,
		TeamID:       p.TeamID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		JerseyNumber: p.JerseyNumber,
		Position:     p.Position,
	}
	return line
}
