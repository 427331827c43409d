package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

type recordEventRequest struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	TeamID    string    `json:"teamId" validate:"required"`
	Action    string    `json:"action" validate:"required,max=50"`
	Points    int       `json:"points"`
	PlayerID  string    `json:"playerId" validate:"required"`
}

type recordStatLineRequest struct {
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

type recordCompletedGameRequest struct {
	MatchID    string                  `json:"matchId"`
	Season     string                  `json:"season"`
	MatchDate  time.Time               `json:"matchDate" validate:"required"`
	Location   string                  `json:"location"`
	HomeTeamID string                  `json:"homeTeamId" validate:"required"`
	AwayTeamID string                  `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	HomeScore  int                     `json:"homeScore" validate:"min=0"`
	AwayScore  int                     `json:"awayScore" validate:"min=0"`
	Events     []recordEventRequest    `json:"events" validate:"dive"`
	StatLines  []recordStatLineRequest `json:"statLines" validate:"dive"`
}

func (h *Handler) RecordCompletedGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordCompletedGame")
	defer span.End()

	var req recordCompletedGameRequest
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

	input := usecase.RecordCompletedGameInput{
		MatchID:    req.MatchID,
		Season:     req.Season,
		MatchDate:  req.MatchDate,
		Location:   req.Location,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Events:     make([]match.Event, 0, len(req.Events)),
		StatLines:  make([]match.StatLine, 0, len(req.StatLines)),
	}
	for _, event := range req.Events {
		input.Events = append(input.Events, match.Event{
			Timestamp: event.Timestamp,
			TeamID:    event.TeamID,
			Action:    event.Action,
			Points:    event.Points,
			PlayerID:  event.PlayerID,
		})
	}
	for _, line := range req.StatLines {
		input.StatLines = append(input.StatLines, match.StatLine{
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
		})
	}

	matchID, err := h.matchService.RecordCompletedGame(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "record completed game failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"matchId": matchID})
}

type matchDetailDTO struct {
	Match           matchDTO         `json:"match"`
	HomeTeam        teamDTO          `json:"homeTeam"`
	AwayTeam        teamDTO          `json:"awayTeam"`
	HomeLineup      []lineupEntryDTO `json:"homeLineup"`
	AwayLineup      []lineupEntryDTO `json:"awayLineup"`
	HomePrevMatches []matchDTO       `json:"homePrevMatches"`
	AwayPrevMatches []matchDTO       `json:"awayPrevMatches"`
	Events          []eventDTO       `json:"events"`
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.matchDetailService.GetMatchDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailDTO{
		Match:           matchToDTO(detail.Match),
		HomeTeam:        teamToDTO(detail.Teams[0]),
		AwayTeam:        teamToDTO(detail.Teams[1]),
		HomeLineup:      lineupEntriesToDTO(detail.HomeLineup),
		AwayLineup:      lineupEntriesToDTO(detail.AwayLineup),
		HomePrevMatches: matchesToDTO(detail.HomePrevMatches),
		AwayPrevMatches: matchesToDTO(detail.AwayPrevMatches),
		Events:          eventsToDTO(detail.Events),
	})
}

func (h *Handler) ListAnalystMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnalystMatches")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListByAnalyst(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list analyst matches failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

type bookAnalystRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *Handler) BookAnalyst(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BookAnalyst")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req bookAnalystRequest
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

	if err := h.matchService.BookAnalyst(ctx, matchID, req.UserID); err != nil {
		h.logger.WarnContext(ctx, "book analyst failed", "match_id", matchID, "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"matchId": matchID, "analystUserId": req.UserID})
}
