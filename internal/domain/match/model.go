package match

import (
	"fmt"
	"time"
)

// TeamRef is the minimal team identity embedded in match payloads.
type TeamRef struct {
	ID      string
	Name    string
	IconURL string
	CoachID string
}

// Match is one scheduled or completed game between two distinct teams.
// Scores stay nil until the game is completed. HomeTeam/AwayTeam are only
// populated by queries that embed participants.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	MatchDate  time.Time
	Location   string
	Season     string
	Completed  bool
	HomeScore  *int
	AwayScore  *int
	AnalystID  string
	HomeTeam   *TeamRef
	AwayTeam   *TeamRef
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires both team ids")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away teams must differ")
	}

	return nil
}

// PlayerRef is the acting player identity joined onto events.
type PlayerRef struct {
	ID           string
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber int
	TeamID       string
}

// Event is one appended entry of a match's chronological log.
type Event struct {
	ID        int64
	MatchID   string
	Timestamp time.Time
	TeamID    string
	Action    string
	Points    int
	PlayerID  string
	Player    PlayerRef
}

// StatLine is one player's box score for a single match, as submitted when
// a completed game is recorded.
type StatLine struct {
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
}

// CompletedGame is the full payload persisted in one store round trip when
// an analyst submits a finished game.
type CompletedGame struct {
	MatchID    string
	Season     string
	MatchDate  time.Time
	Location   string
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
	Events     []Event
	StatLines  []StatLine
}

func (g CompletedGame) Validate() error {
	if g.MatchID == "" {
		return fmt.Errorf("completed game match id is required")
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("completed game requires both team ids")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("completed game home and away teams must differ")
	}

	return nil
}
