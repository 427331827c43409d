package playerstats

import "time"

// PlayerRef is the player identity joined onto stat lines.
type PlayerRef struct {
	ID           string
	TeamID       string
	FirstName    string
	LastName     string
	JerseyNumber int
	Position     string
}

// StatLine is one player's recorded box score for one match.
type StatLine struct {
	ID                   int64
	CreatedAt            time.Time
	MatchID              string
	PlayerID             string
	Points               int
	Assists              int
	Rebounds             int
	Blocks               int
	Turnovers            int
	Steals               int
	Fouls                int
	TwoPointsMade        int
	TwoPointsAttempted   int
	ThreePointsMade      int
	ThreePointsAttempted int
	FreeThrowsMade       int
	FreeThrowsAttempted  int
	Player               PlayerRef
}

// Filter narrows stat-line listings; zero values mean no constraint.
type Filter struct {
	MatchID string
	TeamID  string
}
