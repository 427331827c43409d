package team

import (
	"fmt"
	"time"
)

// Team is a club tracked by the league.
type Team struct {
	ID        string
	Name      string
	CoachID   string
	IconURL   string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
