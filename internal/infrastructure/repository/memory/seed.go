package memory

import (
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
)

const (
	TeamIDWarriors = "team-warriors"
	TeamIDLakers   = "team-lakers"
	TeamIDCeltics  = "team-celtics"
)

func SeedUsers() []user.User {
	return []user.User{
		{ID: "usr-coach-01", AuthUserID: "auth-coach-01", Email: "coach.kerr@example.com", FirstName: "Steve", LastName: "Kern", Role: user.RoleCoach},
		{ID: "usr-coach-02", AuthUserID: "auth-coach-02", Email: "coach.ham@example.com", FirstName: "Darvin", LastName: "Hamm", Role: user.RoleCoach},
		{ID: "usr-analyst-01", AuthUserID: "auth-analyst-01", Email: "analyst@example.com", FirstName: "Ada", LastName: "Stats", Role: user.RoleAnalyst},
		{ID: "usr-fan-01", AuthUserID: "auth-fan-01", Email: "fan@example.com", FirstName: "Sam", LastName: "Court", Role: user.RoleFan},
	}
}

func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: "coach-01", UserID: "usr-coach-01", TeamID: TeamIDWarriors},
		{ID: "coach-02", UserID: "usr-coach-02", TeamID: TeamIDLakers},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDWarriors, Name: "Golden State Warriors", CoachID: "coach-01", IconURL: "EMPTY"},
		{ID: TeamIDLakers, Name: "Los Angeles Lakers", CoachID: "coach-02", IconURL: "EMPTY"},
		{ID: TeamIDCeltics, Name: "Boston Celtics", IconURL: "/default_team.svg"},
	}
}

func SeedLineups() []lineup.Entry {
	return []lineup.Entry{
		{ID: 1, TeamID: TeamIDWarriors, PlayerID: "ply-gsw-30", Position: "PG", IsStarting: true},
		{ID: 2, TeamID: TeamIDWarriors, PlayerID: "ply-gsw-11", Position: "SG", IsStarting: true},
		{ID: 3, TeamID: TeamIDWarriors, PlayerID: "ply-gsw-23", Position: "PF"},
		{ID: 4, TeamID: TeamIDLakers, PlayerID: "ply-lal-06", Position: "SF", IsStarting: true},
		{ID: 5, TeamID: TeamIDLakers, PlayerID: "ply-lal-03", Position: "C"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ply-gsw-30", FirstName: "Wardell", LastName: "Currie", Position: "PG", JerseyNumber: 30, TeamID: TeamIDWarriors},
		{ID: "ply-gsw-11", FirstName: "Klay", LastName: "Thomson", Position: "SG", JerseyNumber: 11, TeamID: TeamIDWarriors},
		{ID: "ply-gsw-23", FirstName: "Draymond", LastName: "Greene", Position: "PF", JerseyNumber: 23, TeamID: TeamIDWarriors},
		{ID: "ply-lal-06", FirstName: "LeRon", LastName: "Jameson", Position: "SF", JerseyNumber: 6, TeamID: TeamIDLakers},
		{ID: "ply-lal-03", FirstName: "Anthony", LastName: "Davison", Position: "C", JerseyNumber: 3, TeamID: TeamIDLakers},
		{ID: "ply-bos-00", FirstName: "Jayson", LastName: "Tatem", Position: "SF", JerseyNumber: 0, TeamID: TeamIDCeltics},
		{ID: "ply-free-07", FirstName: "Free", LastName: "Agent", Position: "SG", JerseyNumber: 7},
	}
}

func SeedMatches() []match.Match {
	score := func(v int) *int { return &v }
	return []match.Match{
		{
			ID:         "match-001",
			HomeTeamID: TeamIDWarriors,
			AwayTeamID: TeamIDLakers,
			MatchDate:  time.Date(2026, 1, 10, 19, 30, 0, 0, time.UTC),
			Location:   "Chase Center",
			Season:     "2025/2026",
			Completed:  true,
			HomeScore:  score(112),
			AwayScore:  score(104),
			AnalystID:  "usr-analyst-01",
		},
		{
			ID:         "match-002",
			HomeTeamID: TeamIDCeltics,
			AwayTeamID: TeamIDWarriors,
			MatchDate:  time.Date(2026, 1, 17, 19, 0, 0, 0, time.UTC),
			Location:   "TD Garden",
			Season:     "2025/2026",
			Completed:  true,
			HomeScore:  score(99),
			AwayScore:  score(101),
		},
		{
			ID:         "match-003",
			HomeTeamID: TeamIDLakers,
			AwayTeamID: TeamIDCeltics,
			MatchDate:  time.Date(2026, 2, 2, 20, 0, 0, 0, time.UTC),
			Location:   "Crypto.com Arena",
			Season:     "2025/2026",
		},
	}
}
