package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

type lineupTableModel struct {
	ID           int64  `db:"id"`
	TeamID       string `db:"team_id"`
	PlayerID     string `db:"player_id"`
	Position     string `db:"position"`
	IsStarting   bool   `db:"is_starting"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	JerseyNumber int    `db:"jersey_number"`
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"dl.id",
		"dl.team_id",
		"dl.player_id",
		"dl.position",
		"dl.is_starting",
		"p.first_name",
		"p.last_name",
		"p.jersey_number",
	).From("default_lineups dl JOIN players p ON p.id = dl.player_id")
}

func (r *LineupRepository) ListByTeam(ctx context.Context, teamID string) ([]lineup.Entry, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("dl.team_id", teamID)).
		OrderBy("dl.is_starting DESC", "p.jersey_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineup: %w", err)
	}

	return lineupEntriesFromRows(rows), nil
}

func (r *LineupRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]lineup.Entry, error) {
	if len(teamIDs) == 0 {
		return []lineup.Entry{}, nil
	}

	query, args, err := lineupBaseSelectBuilder().
		Where(qb.In("dl.team_id", stringSliceToAny(teamIDs))).
		OrderBy("dl.team_id", "dl.is_starting DESC", "p.jersey_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	return lineupEntriesFromRows(rows), nil
}

func (r *LineupRepository) UpdateAssignment(ctx context.Context, playerID, teamID string, isStarting bool, position string) (bool, error) {
	query, args, err := qb.Update("default_lineups").
		Set("position", position).
		Set("is_starting", isStarting).
		Where(qb.Eq("player_id", playerID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update lineup assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update lineup assignment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update lineup assignment result: %w", err)
	}
	return affected > 0, nil
}

func lineupEntriesFromRows(rows []lineupTableModel) []lineup.Entry {
	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineup.Entry{
			ID:           row.ID,
			TeamID:       row.TeamID,
			PlayerID:     row.PlayerID,
			Position:     row.Position,
			IsStarting:   row.IsStarting,
			JerseyNumber: row.JerseyNumber,
			Player: lineup.PlayerRef{
				ID:        row.PlayerID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				TeamID:    row.TeamID,
			},
		})
	}
	return out
}
