// Package cache decorates repositories with an in-process TTL cache.
// Writes invalidate the affected keys so readers never see entries
// older than the configured TTL plus one write.
package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	basecache "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, ids []string) ([]team.Team, error) {
	filter := append([]string(nil), ids...)
	sort.Strings(filter)
	key := "team:list:" + strings.Join(filter, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	key := "team:name:" + strings.ToLower(strings.TrimSpace(name))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) ListByCoach(ctx context.Context, coachID string) ([]team.Team, error) {
	key := "team:coach:" + coachID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCoach(ctx, coachID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}

	r.cache.DeletePrefix(ctx, "team:")
	return created, nil
}

func (r *TeamRepository) UpdateIcon(ctx context.Context, teamID, iconURL string) error {
	if err := r.next.UpdateIcon(ctx, teamID, iconURL); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) Search(ctx context.Context, term string, limit int) ([]team.Team, error) {
	return r.next.Search(ctx, term, limit)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	filter := append([]string(nil), teamIDs...)
	sort.Strings(filter)
	key := "player:list:" + strings.Join(filter, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, teamIDs)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListFreeAgents(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:free-agents", func(ctx context.Context) (any, error) {
		items, err := r.next.ListFreeAgents(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}

	r.cache.DeletePrefix(ctx, "player:")
	return created, nil
}

func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	if err := r.next.AssignTeam(ctx, playerID, teamID); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Search(ctx context.Context, term string, limit int) ([]player.Player, error) {
	key := "player:search:" + strings.ToLower(strings.TrimSpace(term)) + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.Search(ctx, term, limit)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}
