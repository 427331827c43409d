package player

import (
	"fmt"
	"time"
)

// Player is a league player. TeamID is empty while the player is a free
// agent; once assigned it never changes back through the assignment flow.
type Player struct {
	ID           string
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber int
	TeamID       string
	ImageURL     string
	Points       int
	Assists      int
	Rebounds     int
	Blocks       int
	Steals       int
	CreatedAt    time.Time
}

func (p Player) Validate() error {
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number cannot be negative")
	}

	return nil
}
