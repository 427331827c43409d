package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

// RegisterUserInput is the incoming payload for account registration. The
// auth identity comes from the verified token, never from the body.
type RegisterUserInput struct {
	AuthUserID string
	Email      string
	FirstName  string
	LastName   string
	Role       user.Role
}

// UserCheck reports the tracked account behind an auth identity, plus the
// coach profile when the account has one.
type UserCheck struct {
	User    user.User
	Coach   *coach.Coach
	HasTeam bool
}

type UserService struct {
	userRepo  user.Repository
	coachRepo coach.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewUserService(userRepo user.Repository, coachRepo coach.Repository, idGen idgen.Generator) *UserService {
	return &UserService{
		userRepo:  userRepo,
		coachRepo: coachRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, input RegisterUserInput) (user.User, error) {
	input.AuthUserID = strings.TrimSpace(input.AuthUserID)
	input.Email = strings.TrimSpace(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	candidate := user.User{
		ID:         userID,
		AuthUserID: input.AuthUserID,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       input.Role,
		CreatedAt:  s.now().UTC(),
	}
	if err := candidate.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.userRepo.GetByAuthID(ctx, input.AuthUserID); err != nil {
		return user.User{}, fmt.Errorf("get user by auth id: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: account already registered", ErrConflict)
	}

	created, err := s.userRepo.Create(ctx, candidate)
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	if created.Role == user.RoleCoach {
		coachID, err := s.idGen.NewID()
		if err != nil {
			return user.User{}, fmt.Errorf("generate coach id: %w", err)
		}
		if _, err := s.coachRepo.Upsert(ctx, coach.Coach{ID: coachID, UserID: created.ID}); err != nil {
			return user.User{}, fmt.Errorf("create coach profile: %w", err)
		}
	}
	return created, nil
}

// CheckUser resolves the tracked account by auth id, falling back to email
// for accounts registered before the auth link existed.
func (s *UserService) CheckUser(ctx context.Context, principal user.Principal) (UserCheck, error) {
	if principal.AuthUserID == "" {
		return UserCheck{}, fmt.Errorf("%w: missing auth identity", ErrUnauthorized)
	}

	u, exists, err := s.userRepo.GetByAuthID(ctx, principal.AuthUserID)
	if err != nil {
		return UserCheck{}, fmt.Errorf("get user by auth id: %w", err)
	}
	if !exists && principal.Email != "" {
		u, exists, err = s.userRepo.GetByEmail(ctx, principal.Email)
		if err != nil {
			return UserCheck{}, fmt.Errorf("get user by email: %w", err)
		}
	}
	if !exists {
		return UserCheck{}, fmt.Errorf("%w: no account for auth user", ErrNotFound)
	}

	check := UserCheck{User: u}
	if u.Role == user.RoleCoach {
		c, found, err := s.coachRepo.GetByUserID(ctx, u.ID)
		if err != nil {
			return UserCheck{}, fmt.Errorf("get coach by user: %w", err)
		}
		if found {
			check.Coach = &c
			check.HasTeam = c.TeamID != ""
		}
	}
	return check, nil
}
