package stats

import "time"

// MatchSummary is a compact completed-match line inside an aggregate.
type MatchSummary struct {
	MatchID    string
	MatchDate  time.Time
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
}

// PlayerAggregate is one player's cumulative statistics line.
type PlayerAggregate struct {
	PlayerID     string
	FirstName    string
	LastName     string
	JerseyNumber int
	Points       int
	Assists      int
	Rebounds     int
	Blocks       int
	Steals       int
}

// TeamFullStats is the store-computed aggregate for one team.
type TeamFullStats struct {
	TeamName        string
	NumPlayers      int
	LastFiveMatches []MatchSummary
	PlayerStats     []PlayerAggregate
}

// TeamStanding is one row of the fan dashboard team table.
type TeamStanding struct {
	TeamID      string
	TeamName    string
	IconURL     string
	Wins        int
	Losses      int
	TotalPoints int
}

// FanDashboard is the store-computed aggregate served to fans. It takes no
// input; the store assembles it from the whole league.
type FanDashboard struct {
	Standings     []TeamStanding
	TopScorers    []PlayerAggregate
	RecentMatches []MatchSummary
	TotalTeams    int
	TotalPlayers  int
	TotalMatches  int
}
