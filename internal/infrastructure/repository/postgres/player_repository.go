package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type playerTableModel struct {
	ID           string         `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Position     string         `db:"position"`
	JerseyNumber int            `db:"jersey_number"`
	TeamID       sql.NullString `db:"team_id"`
	ImageURL     sql.NullString `db:"image_url"`
	Points       int            `db:"points"`
	Assists      int            `db:"assists"`
	Rebounds     int            `db:"rebounds"`
	Blocks       int            `db:"blocks"`
	Steals       int            `db:"steals"`
	CreatedAt    time.Time      `db:"created_at"`
}

var playerSelectColumns = []string{
	"id",
	"first_name",
	"last_name",
	"position",
	"jersey_number",
	"team_id",
	"image_url",
	"points",
	"assists",
	"rebounds",
	"blocks",
	"steals",
	"created_at",
}

func (r *PlayerRepository) List(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if len(teamIDs) > 0 {
		builder = builder.Where(qb.In("team_id", stringSliceToAny(teamIDs)))
	}

	query, args, err := builder.OrderBy("jersey_number", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListFreeAgents(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Or(qb.IsNull("team_id"), qb.Eq("team_id", ""))).
		OrderBy("jersey_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list free agents query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list free agents: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.InsertInto("players").
		Columns(playerSelectColumns...).
		Values(
			item.ID,
			item.FirstName,
			item.LastName,
			item.Position,
			item.JerseyNumber,
			nullableString(item.TeamID),
			nullableString(item.ImageURL),
			item.Points,
			item.Assists,
			item.Rebounds,
			item.Blocks,
			item.Steals,
			item.CreatedAt,
		).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return item, nil
}

func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	query, args, err := qb.Update("players").
		Set("team_id", teamID).
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign player team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("assign player team: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Search(ctx context.Context, term string, limit int) ([]player.Player, error) {
	pattern := "%" + term + "%"
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Or(
			qb.ILike("first_name", pattern),
			qb.ILike("last_name", pattern),
			qb.Expr("(first_name || ' ' || last_name) ILIKE ?", pattern),
		)).
		OrderBy("jersey_number", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	return playersFromRows(rows), nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Position:     row.Position,
		JerseyNumber: row.JerseyNumber,
		TeamID:       nullStringValue(row.TeamID),
		ImageURL:     nullStringValue(row.ImageURL),
		Points:       row.Points,
		Assists:      row.Assists,
		Rebounds:     row.Rebounds,
		Blocks:       row.Blocks,
		Steals:       row.Steals,
		CreatedAt:    row.CreatedAt,
	}
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}
