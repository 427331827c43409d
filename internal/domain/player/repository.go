package player

import "context"

// Repository exposes player persistence operations.
type Repository interface {
	// List returns players ordered by jersey number; an empty teamIDs
	// filter returns every player.
	List(ctx context.Context, teamIDs []string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListFreeAgents(ctx context.Context) ([]Player, error)
	Create(ctx context.Context, item Player) (Player, error)
	AssignTeam(ctx context.Context, playerID, teamID string) error
	Search(ctx context.Context, term string, limit int) ([]Player, error)
}
