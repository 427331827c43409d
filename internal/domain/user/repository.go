package user

import "context"

// Repository exposes user persistence operations.
type Repository interface {
	GetByAuthID(ctx context.Context, authUserID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	Create(ctx context.Context, item User) (User, error)
}
