package coach

import "context"

// Repository exposes coach persistence operations.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Coach, bool, error)
	GetByID(ctx context.Context, coachID string) (Coach, bool, error)
	Upsert(ctx context.Context, item Coach) (Coach, error)
}
