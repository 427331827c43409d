package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
)

const searchLimit = 10

// SearchResult carries both search legs. A failing leg degrades to an empty
// list rather than failing the whole search.
type SearchResult struct {
	Players []player.Player
	Teams   []team.Team
}

type SearchService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	logger     *slog.Logger
}

func NewSearchService(playerRepo player.Repository, teamRepo team.Repository, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{playerRepo: playerRepo, teamRepo: teamRepo, logger: logger}
}

func (s *SearchService) Search(ctx context.Context, term string) (SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchResult{}, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}

	result := SearchResult{Players: []player.Player{}, Teams: []team.Team{}}

	players, err := s.playerRepo.Search(ctx, term, searchLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "player search leg failed", "term", term, "error", err)
	} else {
		result.Players = players
	}

	teams, err := s.teamRepo.Search(ctx, term, searchLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "team search leg failed", "term", term, "error", err)
	} else {
		result.Teams = teams
	}

	return result, nil
}
