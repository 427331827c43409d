package match

import "context"

// Repository exposes match and match-event persistence operations.
type Repository interface {
	// List returns every match ordered by match date ascending.
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// ListByTeams returns matches involving any of the given teams as home
	// or away, ordered by match date ascending, participants embedded.
	ListByTeams(ctx context.Context, teamIDs []string) ([]Match, error)
	// ListRecentCompleted returns the team's most recent completed matches,
	// newest first, capped at limit, participants embedded.
	ListRecentCompleted(ctx context.Context, teamID string, limit int) ([]Match, error)
	// ListByAnalyst returns matches booked by the analyst, ordered by
	// match date ascending, participants embedded.
	ListByAnalyst(ctx context.Context, analystID string) ([]Match, error)
	AssignAnalyst(ctx context.Context, matchID, analystID string) error
	// SaveCompletedGame persists the match row, its events, per-player stat
	// lines and cumulative stat roll-ups in a single store operation.
	SaveCompletedGame(ctx context.Context, game CompletedGame) error
	// ListEvents returns the match's event log ordered by timestamp
	// ascending, acting player identity joined.
	ListEvents(ctx context.Context, matchID string) ([]Event, error)
}
