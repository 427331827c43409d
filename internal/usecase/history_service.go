package usecase

import (
	"context"
	"fmt"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
)

// HistoryTeam is one club in the league snapshot with its roster and the
// roster's summed career points.
type HistoryTeam struct {
	Team        team.Team
	Players     []player.Player
	TotalPoints int
}

// HistoryMatch is one match line with participant names resolved. Teams
// missing from the store render as "Unknown".
type HistoryMatch struct {
	Match        match.Match
	HomeTeamName string
	AwayTeamName string
}

// HistorySnapshot is the whole-league view served by the history endpoint.
type HistorySnapshot struct {
	Teams        []HistoryTeam
	Matches      []HistoryMatch
	TotalTeams   int
	TotalPlayers int
	TotalMatches int
}

type HistoryService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewHistoryService(teamRepo team.Repository, playerRepo player.Repository, matchRepo match.Repository) *HistoryService {
	return &HistoryService{teamRepo: teamRepo, playerRepo: playerRepo, matchRepo: matchRepo}
}

func (s *HistoryService) Snapshot(ctx context.Context) (HistorySnapshot, error) {
	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return HistorySnapshot{}, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx, nil)
	if err != nil {
		return HistorySnapshot{}, fmt.Errorf("list players: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return HistorySnapshot{}, fmt.Errorf("list matches: %w", err)
	}

	playersByTeam := make(map[string][]player.Player)
	for _, p := range players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
	}

	namesByTeam := make(map[string]string, len(teams))
	snapshot := HistorySnapshot{
		Teams:        make([]HistoryTeam, 0, len(teams)),
		Matches:      make([]HistoryMatch, 0, len(matches)),
		TotalTeams:   len(teams),
		TotalPlayers: len(players),
		TotalMatches: len(matches),
	}

	for _, t := range teams {
		namesByTeam[t.ID] = t.Name
		entry := HistoryTeam{Team: t, Players: playersByTeam[t.ID]}
		if entry.Players == nil {
			entry.Players = []player.Player{}
		}
		for _, p := range entry.Players {
			entry.TotalPoints += p.Points
		}
		snapshot.Teams = append(snapshot.Teams, entry)
	}

	for _, m := range matches {
		snapshot.Matches = append(snapshot.Matches, HistoryMatch{
			Match:        m,
			HomeTeamName: teamNameOrUnknown(namesByTeam, m.HomeTeamID),
			AwayTeamName: teamNameOrUnknown(namesByTeam, m.AwayTeamID),
		})
	}
	return snapshot, nil
}

func teamNameOrUnknown(names map[string]string, teamID string) string {
	if name, ok := names[teamID]; ok {
		return name
	}
	return "Unknown"
}
