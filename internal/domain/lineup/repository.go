package lineup

import "context"

// Repository exposes default-lineup persistence operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Entry, error)
	ListByTeams(ctx context.Context, teamIDs []string) ([]Entry, error)
	// UpdateAssignment sets the starting flag and position on the entry
	// matched by (playerID, teamID). It never creates an entry; the
	// returned bool reports whether a stored entry matched.
	UpdateAssignment(ctx context.Context, playerID, teamID string, isStarting bool, position string) (bool, error)
}
