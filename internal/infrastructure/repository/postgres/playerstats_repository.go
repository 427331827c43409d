package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

type statLineTableModel struct {
	ID                   int64          `db:"id"`
	CreatedAt            time.Time      `db:"created_at"`
	MatchID              string         `db:"match_id"`
	PlayerID             string         `db:"player_id"`
	Points               int            `db:"points"`
	Assists              int            `db:"assists"`
	Rebounds             int            `db:"rebounds"`
	Blocks               int            `db:"blocks"`
	Turnovers            int            `db:"turnovers"`
	Steals               int            `db:"steals"`
	Fouls                int            `db:"fouls"`
	TwoPointsMade        int            `db:"two_points_made"`
	TwoPointsAttempted   int            `db:"two_points_attempted"`
	ThreePointsMade      int            `db:"three_points_made"`
	ThreePointsAttempted int            `db:"three_points_attempted"`
	FreeThrowsMade       int            `db:"free_throws_made"`
	FreeThrowsAttempted  int            `db:"free_throws_attempted"`
	FirstName            string         `db:"first_name"`
	LastName             string         `db:"last_name"`
	JerseyNumber         int            `db:"jersey_number"`
	Position             string         `db:"position"`
	TeamID               sql.NullString `db:"team_id"`
}

func (r *PlayerStatsRepository) List(ctx context.Context, filter playerstats.Filter) ([]playerstats.StatLine, error) {
	builder := qb.Select(
		"s.id",
		"s.created_at",
		"s.match_id",
		"s.player_id",
		"s.points",
		"s.assists",
		"s.rebounds",
		"s.blocks",
		"s.turnovers",
		"s.steals",
		"s.fouls",
		"s.two_points_made",
		"s.two_points_attempted",
		"s.three_points_made",
		"s.three_points_attempted",
		"s.free_throws_made",
		"s.free_throws_attempted",
		"p.first_name",
		"p.last_name",
		"p.jersey_number",
		"p.position",
		"p.team_id",
	).From("player_match_stats s JOIN players p ON p.id = s.player_id")

	conditions := make([]qb.Condition, 0, 2)
	if filter.MatchID != "" {
		conditions = append(conditions, qb.Eq("s.match_id", filter.MatchID))
	}
	if filter.TeamID != "" {
		conditions = append(conditions, qb.Eq("p.team_id", filter.TeamID))
	}
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}

	query, args, err := builder.OrderBy("s.created_at DESC", "s.id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines query: %w", err)
	}

	var rows []statLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stat lines: %w", err)
	}

	out := make([]playerstats.StatLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, statLineFromRow(row))
	}

	return out, nil
}

func (r *PlayerStatsRepository) Insert(ctx context.Context, item playerstats.StatLine) (playerstats.StatLine, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.InsertInto("player_match_stats").
		Columns(
			"created_at",
			"match_id",
			"player_id",
			"points",
			"assists",
			"rebounds",
			"blocks",
			"turnovers",
			"steals",
			"fouls",
			"two_points_made",
			"two_points_attempted",
			"three_points_made",
			"three_points_attempted",
			"free_throws_made",
			"free_throws_attempted",
		).
		Values(
			item.CreatedAt,
			item.MatchID,
			item.PlayerID,
			item.Points,
			item.Assists,
			item.Rebounds,
			item.Blocks,
			item.Turnovers,
			item.Steals,
			item.Fouls,
			item.TwoPointsMade,
			item.TwoPointsAttempted,
			item.ThreePointsMade,
			item.ThreePointsAttempted,
			item.FreeThrowsMade,
			item.FreeThrowsAttempted,
		).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return playerstats.StatLine{}, fmt.Errorf("build insert stat line query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return playerstats.StatLine{}, fmt.Errorf("insert stat line: %w", err)
	}

	return item, nil
}

func statLineFromRow(row statLineTableModel) playerstats.StatLine {
	return playerstats.StatLine{
		ID:                   row.ID,
		CreatedAt:            row.CreatedAt,
		MatchID:              row.MatchID,
		PlayerID:             row.PlayerID,
		Points:               row.Points,
		Assists:              row.Assists,
		Rebounds:             row.Rebounds,
		Blocks:               row.Blocks,
		Turnovers:            row.Turnovers,
		Steals:               row.Steals,
		Fouls:                row.Fouls,
		TwoPointsMade:        row.TwoPointsMade,
		TwoPointsAttempted:   row.TwoPointsAttempted,
		ThreePointsMade:      row.ThreePointsMade,
		ThreePointsAttempted: row.ThreePointsAttempted,
		FreeThrowsMade:       row.FreeThrowsMade,
		FreeThrowsAttempted:  row.FreeThrowsAttempted,
		Player: playerstats.PlayerRef{
			ID:           row.PlayerID,
			TeamID:       nullStringValue(row.TeamID),
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			JerseyNumber: row.JerseyNumber,
			Position:     row.Position,
		},
	}
}
