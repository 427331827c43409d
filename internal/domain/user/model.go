package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleCoach   Role = "Coach"
	RoleAnalyst Role = "Analyst"
	RoleFan     Role = "Fan"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCoach, RoleAnalyst, RoleFan:
		return true
	default:
		return false
	}
}

// User is a registered account inside the tracker, linked to the external
// auth provider through AuthUserID.
type User struct {
	ID         string
	AuthUserID string
	Email      string
	FirstName  string
	LastName   string
	Role       Role
	CreatedAt  time.Time
}

func (u User) Validate() error {
	if u.AuthUserID == "" {
		return fmt.Errorf("user auth id is required")
	}
	if u.FirstName == "" {
		return fmt.Errorf("user first name is required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user role %q is not recognized", u.Role)
	}

	return nil
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	AuthUserID string
	Email      string
}
