package lineup

// PlayerRef is the player identity joined onto lineup entries.
type PlayerRef struct {
	ID        string
	FirstName string
	LastName  string
	TeamID    string
}

// Entry associates one player with one team's default lineup. A team holds
// at most one entry per player.
type Entry struct {
	ID           int64
	TeamID       string
	PlayerID     string
	Position     string
	IsStarting   bool
	JerseyNumber int
	Player       PlayerRef
}
