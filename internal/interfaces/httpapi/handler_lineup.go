package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

func (h *Handler) GetDefaultLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefaultLineup")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.lineupService.GetDefaultLineup(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "get default lineup failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTO(entries))
}

type lineupAssignmentRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Position string `json:"position" validate:"required,max=30"`
}

type saveLineupRequest struct {
	Starters []lineupAssignmentRequest `json:"starters" validate:"max=5,dive"`
	Reserves []lineupAssignmentRequest `json:"reserves" validate:"dive"`
}

func (h *Handler) SaveDefaultLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveDefaultLineup")
	defer span.End()

	caller, err := h.resolveUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveLineupRequest
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

	input := usecase.SaveLineupInput{
		Starters: make([]usecase.LineupAssignment, 0, len(req.Starters)),
		Reserves: make([]usecase.LineupAssignment, 0, len(req.Reserves)),
	}
	for _, item := range req.Starters {
		input.Starters = append(input.Starters, usecase.LineupAssignment{PlayerID: item.PlayerID, Position: item.Position})
	}
	for _, item := range req.Reserves {
		input.Reserves = append(input.Reserves, usecase.LineupAssignment{PlayerID: item.PlayerID, Position: item.Position})
	}

	if err := h.lineupService.SaveDefaultLineup(ctx, caller.ID, input); err != nil {
		h.logger.WarnContext(ctx, "save default lineup failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries, err := h.lineupService.GetDefaultLineup(ctx, caller.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "reload default lineup failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTO(entries))
}
