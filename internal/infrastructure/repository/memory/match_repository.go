package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
)

// MatchRepository keeps matches and their event logs. The optional player and
// stat-line repositories let SaveCompletedGame mimic the store procedure that
// persists everything belonging to a finished game at once.
type MatchRepository struct {
	mu          sync.RWMutex
	items       map[string]match.Match
	events      map[string][]match.Event
	nextEventID int64

	teams   *TeamRepository
	players *PlayerRepository
	stats   *PlayerStatsRepository
}

func NewMatchRepository(
	matches []match.Match,
	teams *TeamRepository,
	players *PlayerRepository,
	stats *PlayerStatsRepository,
) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		items[m.ID] = m
	}
	return &MatchRepository{
		items:   items,
		events:  make(map[string][]match.Event),
		teams:   teams,
		players: players,
		stats:   stats,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, r.embedParticipants(m))
	}
	sortByDateAsc(out)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return r.embedParticipants(m), true, nil
}

func (r *MatchRepository) ListByTeams(_ context.Context, teamIDs []string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	out := make([]match.Match, 0)
	for _, m := range r.items {
		_, home := wanted[m.HomeTeamID]
		_, away := wanted[m.AwayTeamID]
		if home || away {
			out = append(out, r.embedParticipants(m))
		}
	}
	sortByDateAsc(out)
	return out, nil
}

func (r *MatchRepository) ListByAnalyst(_ context.Context, analystID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.items {
		if m.AnalystID == analystID {
			out = append(out, r.embedParticipants(m))
		}
	}
	sortByDateAsc(out)
	return out, nil
}

func (r *MatchRepository) ListRecentCompleted(_ context.Context, teamID string, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, limit)
	for _, m := range r.items {
		if !m.Completed {
			continue
		}
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		out = append(out, r.embedParticipants(m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) AssignAnalyst(_ context.Context, matchID, analystID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return nil
	}
	m.AnalystID = analystID
	r.items[matchID] = m
	return nil
}

func (r *MatchRepository) SaveCompletedGame(ctx context.Context, game match.CompletedGame) error {
	r.mu.Lock()

	homeScore, awayScore := game.HomeScore, game.AwayScore
	m, ok := r.items[game.MatchID]
	if !ok {
		m = match.Match{
			ID:         game.MatchID,
			HomeTeamID: game.HomeTeamID,
			AwayTeamID: game.AwayTeamID,
			MatchDate:  game.MatchDate,
			Location:   game.Location,
			Season:     game.Season,
		}
	}
	m.Completed = true
	m.HomeScore = &homeScore
	m.AwayScore = &awayScore
	r.items[game.MatchID] = m

	for _, ev := range game.Events {
		r.nextEventID++
		ev.ID = r.nextEventID
		ev.MatchID = game.MatchID
		r.events[game.MatchID] = append(r.events[game.MatchID], ev)
	}
	r.mu.Unlock()

	for _, line := range game.StatLines {
		if r.stats != nil {
			if _, err := r.stats.Insert(ctx, playerstats.StatLine{
				MatchID:              game.MatchID,
				PlayerID:             line.PlayerID,
				Points:               line.Points,
				Assists:              line.Assists,
				Rebounds:             line.Rebounds,
				Blocks:               line.Blocks,
				Turnovers:            line.Turnovers,
				Steals:               line.Steals,
				Fouls:                line.Fouls,
				TwoPointsMade:        line.TwoPointsMade,
				TwoPointsAttempted:   line.TwoPointsAttempted,
				ThreePointsMade:      line.ThreePointsMade,
				ThreePointsAttempted: line.ThreePointsAttempted,
				FreeThrowsMade:       line.FreeThrowsMade,
				FreeThrowsAttempted:  line.FreeThrowsAttempted,
			}); err != nil {
				return err
			}
		}
		if r.players != nil {
			r.players.addTotals(line.PlayerID, line.Points, line.Assists, line.Rebounds, line.Blocks, line.Steals)
		}
	}
	return nil
}

func (r *MatchRepository) ListEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	r.mu.RLock()
	events := append([]match.Event(nil), r.events[matchID]...)
	r.mu.RUnlock()

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	if r.players != nil {
		for i, ev := range events {
			p, ok, err := r.players.GetByID(ctx, ev.PlayerID)
			if err != nil || !ok {
				continue
			}
			events[i].Player = match.PlayerRef{
				ID:           p.ID,
				FirstName:    p.FirstName,
				LastName:     p.LastName,
				Position:     p.Position,
				JerseyNumber: p.JerseyNumber,
				TeamID:       p.TeamID,
			}
		}
	}
	return events, nil
}

func (r *MatchRepository) embedParticipants(m match.Match) match.Match {
	if r.teams == nil {
		return m
	}
	if t, ok := r.teams.get(m.HomeTeamID); ok {
		m.HomeTeam = &match.TeamRef{ID: t.ID, Name: t.Name, IconURL: t.IconURL, CoachID: t.CoachID}
	}
	if t, ok := r.teams.get(m.AwayTeamID); ok {
		m.AwayTeam = &match.TeamRef{ID: t.ID, Name: t.Name, IconURL: t.IconURL, CoachID: t.CoachID}
	}
	return m
}

func sortByDateAsc(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.Before(matches[j].MatchDate)
	})
}
