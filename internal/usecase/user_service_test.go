package usecase

import (
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
)

func TestUserService_RegisterUser(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	coachRepo := memory.NewCoachRepository(nil)
	svc := NewUserService(userRepo, coachRepo, idgen.NewRandomGenerator())

	created, err := svc.RegisterUser(t.Context(), RegisterUserInput{
		AuthUserID: "auth-new",
		Email:      "new.coach@example.com",
		FirstName:  "Pat",
		LastName:   "Riles",
		Role:       user.RoleCoach,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated user id")
	}

	// Coach registration also provisions a teamless coach profile.
	c, exists, err := coachRepo.GetByUserID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get coach failed: %v", err)
	}
	if !exists {
		t.Fatal("expected coach profile for coach registration")
	}
	if c.TeamID != "" {
		t.Fatalf("new coach must start without a team, got %s", c.TeamID)
	}
}

func TestUserService_RegisterUser_DuplicateAuthID(t *testing.T) {
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	svc := NewUserService(userRepo, memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	_, err := svc.RegisterUser(t.Context(), RegisterUserInput{
		AuthUserID: "auth-coach-01",
		Email:      "other@example.com",
		FirstName:  "Someone",
		Role:       user.RoleFan,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_RegisterUser_InvalidRole(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(nil), memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	_, err := svc.RegisterUser(t.Context(), RegisterUserInput{
		AuthUserID: "auth-new",
		FirstName:  "Pat",
		Role:       user.Role("Referee"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_CheckUser(t *testing.T) {
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())
	svc := NewUserService(userRepo, coachRepo, idgen.NewRandomGenerator())

	check, err := svc.CheckUser(t.Context(), user.Principal{AuthUserID: "auth-coach-01"})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if check.User.Role != user.RoleCoach {
		t.Fatalf("unexpected role: %s", check.User.Role)
	}
	if check.Coach == nil || !check.HasTeam {
		t.Fatal("expected coach profile with a team")
	}
}

func TestUserService_CheckUser_EmailFallback(t *testing.T) {
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	svc := NewUserService(userRepo, memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	check, err := svc.CheckUser(t.Context(), user.Principal{AuthUserID: "auth-unlinked", Email: "fan@example.com"})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if check.User.Role != user.RoleFan {
		t.Fatalf("unexpected role: %s", check.User.Role)
	}
}

func TestUserService_CheckUser_Unknown(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(nil), memory.NewCoachRepository(nil), idgen.NewRandomGenerator())

	_, err := svc.CheckUser(t.Context(), user.Principal{AuthUserID: "auth-ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
