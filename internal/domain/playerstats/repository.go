package playerstats

import "context"

// Repository exposes per-match stat-line persistence operations.
type Repository interface {
	// List returns stat lines newest first, player identity joined.
	List(ctx context.Context, filter Filter) ([]StatLine, error)
	Insert(ctx context.Context, item StatLine) (StatLine, error)
}
