package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
)

type UserRepository struct {
	mu       sync.RWMutex
	items    map[string]user.User
	byAuthID map[string]string
	byEmail  map[string]string
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{
		items:    make(map[string]user.User, len(users)),
		byAuthID: make(map[string]string, len(users)),
		byEmail:  make(map[string]string, len(users)),
	}
	for _, u := range users {
		r.index(u)
	}
	return r
}

func (r *UserRepository) GetByAuthID(_ context.Context, authUserID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byAuthID[authUserID]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return u, true, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index(item)
	return item, nil
}

func (r *UserRepository) index(u user.User) {
	r.items[u.ID] = u
	r.byAuthID[u.AuthUserID] = u.ID
	if u.Email != "" {
		r.byEmail[strings.ToLower(u.Email)] = u.ID
	}
}
