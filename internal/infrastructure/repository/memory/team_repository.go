package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		items:  make(map[string]team.Team, len(teams)),
		orders: make([]string, 0, len(teams)),
	}
	for _, t := range teams {
		r.items[t.ID] = t
		r.orders = append(r.orders, t.ID)
	}
	return r
}

func (r *TeamRepository) List(_ context.Context, ids []string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(ids) == 0 {
		out := make([]team.Team, 0, len(r.orders))
		for _, id := range r.orders {
			out = append(out, r.items[id])
		}
		return out, nil
	}

	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.items[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	t, ok := r.get(teamID)
	if !ok {
		return team.Team{}, false, nil
	}
	return t, true, nil
}

func (r *TeamRepository) get(teamID string) (team.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	return t, ok
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		t := r.items[id]
		if strings.EqualFold(t.Name, name) {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) ListByCoach(_ context.Context, coachID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, 1)
	for _, id := range r.orders {
		if t := r.items[id]; t.CoachID == coachID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *TeamRepository) UpdateIcon(_ context.Context, teamID, iconURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return nil
	}
	t.IconURL = iconURL
	r.items[teamID] = t
	return nil
}

func (r *TeamRepository) Search(_ context.Context, term string, limit int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	out := make([]team.Team, 0, limit)
	for _, id := range r.orders {
		t := r.items[id]
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
