package memory

import (
	"context"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
)

type CoachRepository struct {
	mu       sync.RWMutex
	items    map[string]coach.Coach
	byUserID map[string]string
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	r := &CoachRepository{
		items:    make(map[string]coach.Coach, len(coaches)),
		byUserID: make(map[string]string, len(coaches)),
	}
	for _, c := range coaches {
		r.items[c.ID] = c
		r.byUserID[c.UserID] = c.ID
	}
	return r
}

func (r *CoachRepository) GetByUserID(_ context.Context, userID string) (coach.Coach, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUserID[userID]
	if !ok {
		return coach.Coach{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *CoachRepository) GetByID(_ context.Context, coachID string) (coach.Coach, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[coachID]
	if !ok {
		return coach.Coach{}, false, nil
	}
	return c, true, nil
}

func (r *CoachRepository) Upsert(_ context.Context, item coach.Coach) (coach.Coach, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.byUserID[item.UserID] = item.ID
	return item, nil
}
