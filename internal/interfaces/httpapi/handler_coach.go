package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

type createTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *Handler) CreateCoachTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCoachTeam")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createTeamRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		UserID: caller.ID,
		Name:   req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) CoachCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CoachCheck")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.teamService.CoachCheck(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "coach check failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(c))
}

func (h *Handler) ListCoachPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoachPlayers")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.CoachPlayers(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list coach players failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListCoachMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoachMatches")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListByCoach(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list coach matches failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

type assignPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayer")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req assignPlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	assigned, err := h.playerService.AssignPlayer(ctx, usecase.AssignPlayerInput{
		UserID:   caller.ID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "assign player failed", "user_id", caller.ID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(assigned))
}
