package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

type teamStatsRequest struct {
	TeamID     string `json:"teamId"`
	AuthUserID string `json:"authUserId"`
}

type teamFullStatsDTO struct {
	TeamName        string               `json:"teamName"`
	NumPlayers      int                  `json:"numPlayers"`
	LastFiveMatches []matchSummaryDTO    `json:"lastFiveMatches"`
	PlayerStats     []playerAggregateDTO `json:"playerStats"`
}

func (h *Handler) TeamFullStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamFullStats")
	defer span.End()

	var req teamStatsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.statsService.TeamFullStats(ctx, usecase.TeamStatsQuery{
		TeamID:     req.TeamID,
		AuthUserID: req.AuthUserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "team full stats failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFullStatsDTO{
		TeamName:        result.TeamName,
		NumPlayers:      result.NumPlayers,
		LastFiveMatches: matchSummariesToDTO(result.LastFiveMatches),
		PlayerStats:     playerAggregatesToDTO(result.PlayerStats),
	})
}

type teamStandingDTO struct {
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	IconURL     string `json:"iconUrl,omitempty"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	TotalPoints int    `json:"totalPoints"`
}

type fanDashboardDTO struct {
	Standings     []teamStandingDTO    `json:"standings"`
	TopScorers    []playerAggregateDTO `json:"topScorers"`
	RecentMatches []matchSummaryDTO    `json:"recentMatches"`
	TotalTeams    int                  `json:"totalTeams"`
	TotalPlayers  int                  `json:"totalPlayers"`
	TotalMatches  int                  `json:"totalMatches"`
}

func (h *Handler) FanDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FanDashboard")
	defer span.End()

	dashboard, err := h.statsService.FanDashboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "fan dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	standings := make([]teamStandingDTO, 0, len(dashboard.Standings))
	for _, standing := range dashboard.Standings {
		standings = append(standings, teamStandingDTO{
			TeamID:      standing.TeamID,
			TeamName:    standing.TeamName,
			IconURL:     standing.IconURL,
			Wins:        standing.Wins,
			Losses:      standing.Losses,
			TotalPoints: standing.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, fanDashboardDTO{
		Standings:     standings,
		TopScorers:    playerAggregatesToDTO(dashboard.TopScorers),
		RecentMatches: matchSummariesToDTO(dashboard.RecentMatches),
		TotalTeams:    dashboard.TotalTeams,
		TotalPlayers:  dashboard.TotalPlayers,
		TotalMatches:  dashboard.TotalMatches,
	})
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStats")
	defer span.End()

	filter := playerstats.Filter{
		MatchID: strings.TrimSpace(r.URL.Query().Get("matchId")),
		TeamID:  strings.TrimSpace(r.URL.Query().Get("teamId")),
	}

	lines, err := h.playerStatsService.ListStatLines(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statLinesToDTO(lines))
}

type insertStatLineRequest struct {
	MatchID              string `json:"matchId" validate:"required"`
	PlayerID             string `json:"playerId" validate:"required"`
	Points               int    `json:"points"`
	Assists              int    `json:"assists"`
	Rebounds             int    `json:"rebounds"`
	Blocks               int    `json:"blocks"`
	Turnovers            int    `json:"turnovers"`
	Steals               int    `json:"steals"`
	Fouls                int    `json:"fouls"`
	TwoPointsMade        int    `json:"twoPointsMade"`
	TwoPointsAttempted   int    `json:"twoPointsAttempted"`
	ThreePointsMade      int    `json:"threePointsMade"`
	ThreePointsAttempted int    `json:"threePointsAttempted"`
	FreeThrowsMade       int    `json:"freeThrowsMade"`
	FreeThrowsAttempted  int    `json:"freeThrowsAttempted"`
}

func (h *Handler) RecordPlayerStatLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPlayerStatLine")
	defer span.End()

	var req insertStatLineRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	recorded, err := h.playerStatsService.RecordStatLine(ctx, playerstats.StatLine{
		MatchID:              req.MatchID,
		PlayerID:             req.PlayerID,
		Points:               req.Points,
		Assists:              req.Assists,
		Rebounds:             req.Rebounds,
		Blocks:               req.Blocks,
		Turnovers:            req.Turnovers,
		Steals:               req.Steals,
		Fouls:                req.Fouls,
		TwoPointsMade:        req.TwoPointsMade,
		TwoPointsAttempted:   req.TwoPointsAttempted,
		ThreePointsMade:      req.ThreePointsMade,
		ThreePointsAttempted: req.ThreePointsAttempted,
		FreeThrowsMade:       req.FreeThrowsMade,
		FreeThrowsAttempted:  req.FreeThrowsAttempted,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record stat line failed", "match_id", req.MatchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, statLineToDTO(recorded))
}
