package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// List returns all teams, or only those with the given ids when the
	// filter is non-empty.
	List(ctx context.Context, ids []string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	ListByCoach(ctx context.Context, coachID string) ([]Team, error)
	Create(ctx context.Context, item Team) (Team, error)
	UpdateIcon(ctx context.Context, teamID, iconURL string) error
	Search(ctx context.Context, term string, limit int) ([]Team, error)
}
