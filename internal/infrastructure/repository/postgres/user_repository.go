package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	qb "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userTableModel struct {
	ID         string    `db:"id"`
	AuthUserID string    `db:"auth_user_id"`
	Email      string    `db:"email"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
}

var userSelectColumns = []string{
	"id",
	"auth_user_id",
	"email",
	"first_name",
	"last_name",
	"role",
	"created_at",
}

func (r *UserRepository) GetByAuthID(ctx context.Context, authUserID string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("auth_user_id", authUserID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(email) = ?", strings.ToLower(email)))
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("id", userID))
}

func (r *UserRepository) getOne(ctx context.Context, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(cond).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.InsertInto("users").
		Columns(userSelectColumns...).
		Values(item.ID, item.AuthUserID, item.Email, item.FirstName, item.LastName, string(item.Role), item.CreatedAt).
		ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return item, nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:         row.ID,
		AuthUserID: row.AuthUserID,
		Email:      row.Email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Role:       user.Role(row.Role),
		CreatedAt:  row.CreatedAt,
	}
}
