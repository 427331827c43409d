package stats

import "context"

// Repository exposes the store's named aggregate procedures.
type Repository interface {
	TeamFullStatsByTeam(ctx context.Context, teamID string) (TeamFullStats, bool, error)
	TeamFullStatsByUser(ctx context.Context, authUserID string) (TeamFullStats, bool, error)
	FanDashboard(ctx context.Context) (FanDashboard, error)
}
