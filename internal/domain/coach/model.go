package coach

// Coach links a user account to the single team it manages. TeamID stays
// empty until the coach creates a team.
type Coach struct {
	ID     string
	UserID string
	TeamID string
}
