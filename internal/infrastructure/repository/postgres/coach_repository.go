package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type CoachRepository struct {
	db *sqlx.DB
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

type coachTableModel struct {
	ID     string         `db:"id"`
	UserID string         `db:"user_id"`
	TeamID sql.NullString `db:"team_id"`
}

func (r *CoachRepository) GetByUserID(ctx context.Context, userID string) (coach.Coach, bool, error) {
	return r.getOne(ctx, qb.Eq("user_id", userID))
}

func (r *CoachRepository) GetByID(ctx context.Context, coachID string) (coach.Coach, bool, error) {
	return r.getOne(ctx, qb.Eq("id", coachID))
}

func (r *CoachRepository) getOne(ctx context.Context, cond qb.Condition) (coach.Coach, bool, error) {
	query, args, err := qb.Select("id", "user_id", "team_id").From("coaches").
		Where(cond).
		ToSQL()
	if err != nil {
		return coach.Coach{}, false, fmt.Errorf("build get coach query: %w", err)
	}

	var row coachTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return coach.Coach{}, false, nil
		}
		return coach.Coach{}, false, fmt.Errorf("get coach: %w", err)
	}

	return coachFromRow(row), true, nil
}

func (r *CoachRepository) Upsert(ctx context.Context, item coach.Coach) (coach.Coach, error) {
	query, args, err := qb.InsertInto("coaches").
		Columns("id", "user_id", "team_id").
		Values(item.ID, item.UserID, nullableString(item.TeamID)).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET team_id = EXCLUDED.team_id`).
		ToSQL()
	if err != nil {
		return coach.Coach{}, fmt.Errorf("build upsert coach query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return coach.Coach{}, fmt.Errorf("upsert coach: %w", err)
	}

	return item, nil
}

func coachFromRow(row coachTableModel) coach.Coach {
	return coach.Coach{
		ID:     row.ID,
		UserID: row.UserID,
		TeamID: nullStringValue(row.TeamID),
	}
}
