package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/stats"
)

// StatsRepository fronts the aggregate store functions. Each function
// assembles its answer inside the database and returns one jsonb document.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type matchSummaryPayload struct {
	MatchID    string    `json:"match_id"`
	MatchDate  time.Time `json:"match_date"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
}

type playerAggregatePayload struct {
	PlayerID     string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JerseyNumber int    `json:"jersey_number"`
	Points       int    `json:"points"`
	Assists      int    `json:"assists"`
	Rebounds     int    `json:"rebounds"`
	Blocks       int    `json:"blocks"`
	Steals       int    `json:"steals"`
}

type teamFullStatsPayload struct {
	TeamName        string                   `json:"team_name"`
	NumPlayers      int                      `json:"num_players"`
	LastFiveMatches []matchSummaryPayload    `json:"last_five_matches"`
	PlayerStats     []playerAggregatePayload `json:"player_stats"`
}

func (r *StatsRepository) TeamFullStatsByTeam(ctx context.Context, teamID string) (stats.TeamFullStats, bool, error) {
	return r.teamFullStats(ctx, `SELECT get_team_full_stats($1)`, teamID)
}

func (r *StatsRepository) TeamFullStatsByUser(ctx context.Context, authUserID string) (stats.TeamFullStats, bool, error) {
	return r.teamFullStats(ctx, `SELECT get_team_full_stats_by_user($1)`, authUserID)
}

func (r *StatsRepository) teamFullStats(ctx context.Context, query, arg string) (stats.TeamFullStats, bool, error) {
	var document []byte
	if err := r.db.GetContext(ctx, &document, query, arg); err != nil {
		return stats.TeamFullStats{}, false, fmt.Errorf("get team full stats: %w", err)
	}
	if len(document) == 0 || string(document) == "null" {
		return stats.TeamFullStats{}, false, nil
	}

	var payload teamFullStatsPayload
	if err := sonic.Unmarshal(document, &payload); err != nil {
		return stats.TeamFullStats{}, false, fmt.Errorf("decode team full stats: %w", err)
	}

	out := stats.TeamFullStats{
		TeamName:        payload.TeamName,
		NumPlayers:      payload.NumPlayers,
		LastFiveMatches: matchSummariesFromPayload(payload.LastFiveMatches),
		PlayerStats:     playerAggregatesFromPayload(payload.PlayerStats),
	}

	return out, true, nil
}

type teamStandingPayload struct {
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	IconURL     string `json:"icon_url"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	TotalPoints int    `json:"total_points"`
}

type fanDashboardPayload struct {
	Standings     []teamStandingPayload    `json:"standings"`
	TopScorers    []playerAggregatePayload `json:"top_scorers"`
	RecentMatches []matchSummaryPayload    `json:"recent_matches"`
	TotalTeams    int                      `json:"total_teams"`
	TotalPlayers  int                      `json:"total_players"`
	TotalMatches  int                      `json:"total_matches"`
}

func (r *StatsRepository) FanDashboard(ctx context.Context) (stats.FanDashboard, error) {
	var document []byte
	if err := r.db.GetContext(ctx, &document, `SELECT get_fan_dashboard()`); err != nil {
		return stats.FanDashboard{}, fmt.Errorf("get fan dashboard: %w", err)
	}

	var payload fanDashboardPayload
	if err := sonic.Unmarshal(document, &payload); err != nil {
		return stats.FanDashboard{}, fmt.Errorf("decode fan dashboard: %w", err)
	}

	out := stats.FanDashboard{
		Standings:     make([]stats.TeamStanding, 0, len(payload.Standings)),
		TopScorers:    playerAggregatesFromPayload(payload.TopScorers),
		RecentMatches: matchSummariesFromPayload(payload.RecentMatches),
		TotalTeams:    payload.TotalTeams,
		TotalPlayers:  payload.TotalPlayers,
		TotalMatches:  payload.TotalMatches,
	}
	for _, standing := range payload.Standings {
		out.Standings = append(out.Standings, stats.TeamStanding{
			TeamID:      standing.TeamID,
			TeamName:    standing.TeamName,
			IconURL:     standing.IconURL,
			Wins:        standing.Wins,
			Losses:      standing.Losses,
			TotalPoints: standing.TotalPoints,
		})
	}

	return out, nil
}

func matchSummariesFromPayload(items []matchSummaryPayload) []stats.MatchSummary {
	out := make([]stats.MatchSummary, 0, len(items))
	for _, item := range items {
		out = append(out, stats.MatchSummary{
			MatchID:    item.MatchID,
			MatchDate:  item.MatchDate,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			HomeScore:  item.HomeScore,
			AwayScore:  item.AwayScore,
		})
	}
	return out
}

func playerAggregatesFromPayload(items []playerAggregatePayload) []stats.PlayerAggregate {
	out := make([]stats.PlayerAggregate, 0, len(items))
	for _, item := range items {
		out = append(out, stats.PlayerAggregate{
			PlayerID:     item.PlayerID,
			FirstName:    item.FirstName,
			LastName:     item.LastName,
			JerseyNumber: item.JerseyNumber,
			Points:       item.Points,
			Assists:      item.Assists,
			Rebounds:     item.Rebounds,
			Blocks:       item.Blocks,
			Steals:       item.Steals,
		})
	}
	return out
}
