package memory

import (
	"context"
	"sort"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/stats"
)

// StatsRepository derives the store-side aggregates from the other memory
// repositories, mirroring what the SQL procedures compute in one shot.
type StatsRepository struct {
	users   *UserRepository
	coaches *CoachRepository
	teams   *TeamRepository
	players *PlayerRepository
	matches *MatchRepository
}

func NewStatsRepository(
	users *UserRepository,
	coaches *CoachRepository,
	teams *TeamRepository,
	players *PlayerRepository,
	matches *MatchRepository,
) *StatsRepository {
	return &StatsRepository{
		users:   users,
		coaches: coaches,
		teams:   teams,
		players: players,
		matches: matches,
	}
}

func (r *StatsRepository) TeamFullStatsByTeam(ctx context.Context, teamID string) (stats.TeamFullStats, bool, error) {
	t, ok, err := r.teams.GetByID(ctx, teamID)
	if err != nil || !ok {
		return stats.TeamFullStats{}, false, err
	}

	players, err := r.players.List(ctx, []string{teamID})
	if err != nil {
		return stats.TeamFullStats{}, false, err
	}

	recent, err := r.matches.ListRecentCompleted(ctx, teamID, 5)
	if err != nil {
		return stats.TeamFullStats{}, false, err
	}

	full := stats.TeamFullStats{
		TeamName:        t.Name,
		NumPlayers:      len(players),
		LastFiveMatches: summarize(recent),
		PlayerStats:     make([]stats.PlayerAggregate, 0, len(players)),
	}
	for _, p := range players {
		full.PlayerStats = append(full.PlayerStats, stats.PlayerAggregate{
			PlayerID:     p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			JerseyNumber: p.JerseyNumber,
			Points:       p.Points,
			Assists:      p.Assists,
			Rebounds:     p.Rebounds,
			Blocks:       p.Blocks,
			Steals:       p.Steals,
		})
	}
	return full, true, nil
}

func (r *StatsRepository) TeamFullStatsByUser(ctx context.Context, authUserID string) (stats.TeamFullStats, bool, error) {
	u, ok, err := r.users.GetByAuthID(ctx, authUserID)
	if err != nil || !ok {
		return stats.TeamFullStats{}, false, err
	}
	c, ok, err := r.coaches.GetByUserID(ctx, u.ID)
	if err != nil || !ok || c.TeamID == "" {
		return stats.TeamFullStats{}, false, err
	}
	return r.TeamFullStatsByTeam(ctx, c.TeamID)
}

func (r *StatsRepository) FanDashboard(ctx context.Context) (stats.FanDashboard, error) {
	teams, err := r.teams.List(ctx, nil)
	if err != nil {
		return stats.FanDashboard{}, err
	}
	players, err := r.players.List(ctx, nil)
	if err != nil {
		return stats.FanDashboard{}, err
	}
	matches, err := r.matches.List(ctx)
	if err != nil {
		return stats.FanDashboard{}, err
	}

	standingsByTeam := make(map[string]*stats.TeamStanding, len(teams))
	for _, t := range teams {
		standingsByTeam[t.ID] = &stats.TeamStanding{TeamID: t.ID, TeamName: t.Name, IconURL: t.IconURL}
	}

	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Completed || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		completed = append(completed, m)

		home, away := standingsByTeam[m.HomeTeamID], standingsByTeam[m.AwayTeamID]
		if home != nil {
			home.TotalPoints += *m.HomeScore
			if *m.HomeScore > *m.AwayScore {
				home.Wins++
			} else {
				home.Losses++
			}
		}
		if away != nil {
			away.TotalPoints += *m.AwayScore
			if *m.AwayScore > *m.HomeScore {
				away.Wins++
			} else {
				away.Losses++
			}
		}
	}

	standings := make([]stats.TeamStanding, 0, len(standingsByTeam))
	for _, s := range standingsByTeam {
		standings = append(standings, *s)
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].TeamName < standings[j].TeamName
	})

	scorers := make([]stats.PlayerAggregate, 0, len(players))
	for _, p := range players {
		scorers = append(scorers, stats.PlayerAggregate{
			PlayerID:     p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			JerseyNumber: p.JerseyNumber,
			Points:       p.Points,
			Assists:      p.Assists,
			Rebounds:     p.Rebounds,
			Blocks:       p.Blocks,
			Steals:       p.Steals,
		})
	}
	sort.SliceStable(scorers, func(i, j int) bool {
		return scorers[i].Points > scorers[j].Points
	})
	if len(scorers) > 10 {
		scorers = scorers[:10]
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].MatchDate.After(completed[j].MatchDate)
	})
	recent := completed
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return stats.FanDashboard{
		Standings:     standings,
		TopScorers:    scorers,
		RecentMatches: summarize(recent),
		TotalTeams:    len(teams),
		TotalPlayers:  len(players),
		TotalMatches:  len(matches),
	}, nil
}

func summarize(matches []match.Match) []stats.MatchSummary {
	out := make([]stats.MatchSummary, 0, len(matches))
	for _, m := range matches {
		summary := stats.MatchSummary{
			MatchID:    m.ID,
			MatchDate:  m.MatchDate,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
		}
		if m.HomeScore != nil {
			summary.HomeScore = *m.HomeScore
		}
		if m.AwayScore != nil {
			summary.AwayScore = *m.AwayScore
		}
		out = append(out, summary)
	}
	return out
}
