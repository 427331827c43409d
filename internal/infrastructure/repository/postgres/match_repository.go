package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

type matchTableModel struct {
	ID         string         `db:"id"`
	HomeTeamID string         `db:"home_team_id"`
	AwayTeamID string         `db:"away_team_id"`
	MatchDate  time.Time      `db:"match_date"`
	Location   sql.NullString `db:"location"`
	Season     sql.NullString `db:"season"`
	Completed  bool           `db:"completed"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	AnalystID  sql.NullString `db:"analyst_id"`

	HomeTeamName    sql.NullString `db:"home_team_name"`
	HomeTeamIconURL sql.NullString `db:"home_team_icon_url"`
	HomeTeamCoachID sql.NullString `db:"home_team_coach_id"`
	AwayTeamName    sql.NullString `db:"away_team_name"`
	AwayTeamIconURL sql.NullString `db:"away_team_icon_url"`
	AwayTeamCoachID sql.NullString `db:"away_team_coach_id"`
}

var matchSelectColumns = []string{
	"m.id",
	"m.home_team_id",
	"m.away_team_id",
	"m.match_date",
	"m.location",
	"m.season",
	"m.completed",
	"m.home_score",
	"m.away_score",
	"m.analyst_id",
}

func matchSelectBuilder(withParticipants bool) *qb.SelectBuilder {
	columns := matchSelectColumns
	from := "matches m"
	if withParticipants {
		columns = append(append([]string{}, matchSelectColumns...),
			"ht.name AS home_team_name",
			"ht.icon_url AS home_team_icon_url",
			"ht.coach_id AS home_team_coach_id",
			"awt.name AS away_team_name",
			"awt.icon_url AS away_team_icon_url",
			"awt.coach_id AS away_team_coach_id",
		)
		from = "matches m JOIN teams ht ON ht.id = m.home_team_id JOIN teams awt ON awt.id = m.away_team_id"
	}
	return qb.Select(columns...).From(from)
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchSelectBuilder(false).
		OrderBy("m.match_date", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matchesFromRows(rows, false), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := matchSelectBuilder(false).
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row, false), true, nil
}

func (r *MatchRepository) ListByAnalyst(ctx context.Context, analystID string) ([]match.Match, error) {
	query, args, err := matchSelectBuilder(true).
		Where(qb.Eq("m.analyst_id", analystID)).
		OrderBy("m.match_date", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by analyst query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by analyst: %w", err)
	}

	return matchesFromRows(rows, true), nil
}

func (r *MatchRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]match.Match, error) {
	if len(teamIDs) == 0 {
		return []match.Match{}, nil
	}

	ids := stringSliceToAny(teamIDs)
	query, args, err := matchSelectBuilder(true).
		Where(qb.Or(qb.In("m.home_team_id", ids), qb.In("m.away_team_id", ids))).
		OrderBy("m.match_date", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by teams query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by teams: %w", err)
	}

	return matchesFromRows(rows, true), nil
}

func (r *MatchRepository) ListRecentCompleted(ctx context.Context, teamID string, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = 5
	}

	query, args, err := matchSelectBuilder(true).
		Where(
			qb.Or(qb.Eq("m.home_team_id", teamID), qb.Eq("m.away_team_id", teamID)),
			qb.Eq("m.completed", true),
		).
		OrderBy("m.match_date DESC", "m.id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list recent completed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list recent completed matches: %w", err)
	}

	return matchesFromRows(rows, true), nil
}

func (r *MatchRepository) AssignAnalyst(ctx context.Context, matchID, analystID string) error {
	query, args, err := qb.Update("matches").
		Set("analyst_id", analystID).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign analyst query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("assign analyst: %w", err)
	}

	return nil
}

type bulkGameEventPayload struct {
	Timestamp time.Time `json:"ts"`
	TeamID    string    `json:"team_id"`
	Action    string    `json:"action"`
	Points    int       `json:"points"`
	PlayerID  string    `json:"player_id"`
}

type bulkGameStatLinePayload struct {
	PlayerID             string `json:"player_id"`
	Points               int    `json:"points"`
	Assists              int    `json:"assists"`
	Rebounds             int    `json:"rebounds"`
	Blocks               int    `json:"blocks"`
	Turnovers            int    `json:"turnovers"`
	Steals               int    `json:"steals"`
	Fouls                int    `json:"fouls"`
	TwoPointsMade        int    `json:"two_points_made"`
	TwoPointsAttempted   int    `json:"two_points_attempted"`
	ThreePointsMade      int    `json:"three_points_made"`
	ThreePointsAttempted int    `json:"three_points_attempted"`
	FreeThrowsMade       int    `json:"free_throws_made"`
	FreeThrowsAttempted  int    `json:"free_throws_attempted"`
}

type bulkGamePayload struct {
	MatchID    string                    `json:"match_id"`
	Season     string                    `json:"season"`
	MatchDate  time.Time                 `json:"match_date"`
	Location   string                    `json:"location"`
	HomeTeamID string                    `json:"home_team_id"`
	AwayTeamID string                    `json:"away_team_id"`
	HomeScore  int                       `json:"home_score"`
	AwayScore  int                       `json:"away_score"`
	Events     []bulkGameEventPayload    `json:"events"`
	StatLines  []bulkGameStatLinePayload `json:"stat_lines"`
}

// SaveCompletedGame hands the whole game to the bulk_save_game store
// function so the match row, events, stat lines and career roll-ups commit
// atomically.
func (r *MatchRepository) SaveCompletedGame(ctx context.Context, game match.CompletedGame) error {
	payload := bulkGamePayload{
		MatchID:    game.MatchID,
		Season:     game.Season,
		MatchDate:  game.MatchDate,
		Location:   game.Location,
		HomeTeamID: game.HomeTeamID,
		AwayTeamID: game.AwayTeamID,
		HomeScore:  game.HomeScore,
		AwayScore:  game.AwayScore,
		Events:     make([]bulkGameEventPayload, 0, len(game.Events)),
		StatLines:  make([]bulkGameStatLinePayload, 0, len(game.StatLines)),
	}
	for _, event := range game.Events {
		payload.Events = append(payload.Events, bulkGameEventPayload{
			Timestamp: event.Timestamp,
			TeamID:    event.TeamID,
			Action:    event.Action,
			Points:    event.Points,
			PlayerID:  event.PlayerID,
		})
	}
	for _, line := range game.StatLines {
		payload.StatLines = append(payload.StatLines, bulkGameStatLinePayload{
			PlayerID:             line.PlayerID,
			Points:               line.Points,
			Assists:              line.Assists,
			Rebounds:             line.Rebounds,
			Blocks:               line.Blocks,
			Turnovers:            line.Turnovers,
			Steals:               line.Steals,
			Fouls:                line.Fouls,
			TwoPointsMade:        line.TwoPointsMade,
			TwoPointsAttempted:   line.TwoPointsAttempted,
			ThreePointsMade:      line.ThreePointsMade,
			ThreePointsAttempted: line.ThreePointsAttempted,
			FreeThrowsMade:       line.FreeThrowsMade,
			FreeThrowsAttempted:  line.FreeThrowsAttempted,
		})
	}

	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode completed game payload: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `SELECT bulk_save_game($1::jsonb)`, string(encoded)); err != nil {
		return fmt.Errorf("save completed game: %w", err)
	}

	return nil
}

type matchEventTableModel struct {
	ID           int64     `db:"id"`
	MatchID      string    `db:"match_id"`
	Timestamp    time.Time `db:"event_time"`
	TeamID       string    `db:"team_id"`
	Action       string    `db:"action"`
	Points       int       `db:"points"`
	PlayerID     string    `db:"player_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Position     string    `db:"position"`
	JerseyNumber int       `db:"jersey_number"`
}

func (r *MatchRepository) ListEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	query, args, err := qb.Select(
		"e.id",
		"e.match_id",
		"e.event_time",
		"e.team_id",
		"e.action",
		"e.points",
		"e.player_id",
		"p.first_name",
		"p.last_name",
		"p.position",
		"p.jersey_number",
	).From("match_events e JOIN players p ON p.id = e.player_id").
		Where(qb.Eq("e.match_id", matchID)).
		OrderBy("e.event_time", "e.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match events query: %w", err)
	}

	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Event{
			ID:        row.ID,
			MatchID:   row.MatchID,
			Timestamp: row.Timestamp,
			TeamID:    row.TeamID,
			Action:    row.Action,
			Points:    row.Points,
			PlayerID:  row.PlayerID,
			Player: match.PlayerRef{
				ID:           row.PlayerID,
				FirstName:    row.FirstName,
				LastName:     row.LastName,
				Position:     row.Position,
				JerseyNumber: row.JerseyNumber,
				TeamID:       row.TeamID,
			},
		})
	}

	return out, nil
}

func matchFromRow(row matchTableModel, withParticipants bool) match.Match {
	out := match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		MatchDate:  row.MatchDate,
		Location:   nullStringValue(row.Location),
		Season:     nullStringValue(row.Season),
		Completed:  row.Completed,
		HomeScore:  nullIntPtr(row.HomeScore),
		AwayScore:  nullIntPtr(row.AwayScore),
		AnalystID:  nullStringValue(row.AnalystID),
	}
	if withParticipants {
		out.HomeTeam = &match.TeamRef{
			ID:      row.HomeTeamID,
			Name:    nullStringValue(row.HomeTeamName),
			IconURL: nullStringValue(row.HomeTeamIconURL),
			CoachID: nullStringValue(row.HomeTeamCoachID),
		}
		out.AwayTeam = &match.TeamRef{
			ID:      row.AwayTeamID,
			Name:    nullStringValue(row.AwayTeamName),
			IconURL: nullStringValue(row.AwayTeamIconURL),
			CoachID: nullStringValue(row.AwayTeamCoachID),
		}
	}
	return out
}

func matchesFromRows(rows []matchTableModel, withParticipants bool) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row, withParticipants))
	}
	return out
}
