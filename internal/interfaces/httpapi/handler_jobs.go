package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

type backfillLogosRequest struct {
	MaxWorkers int `json:"maxWorkers" validate:"min=0,max=16"`
}

func (h *Handler) RunLogoBackfillJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLogoBackfillJob")
	defer span.End()

	// Body is optional; an empty request runs with default worker count.
	var req backfillLogosRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.logoBackfillService.Backfill(ctx, usecase.BackfillInput{MaxWorkers: req.MaxWorkers})
	if err != nil {
		h.logger.ErrorContext(ctx, "logo backfill job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
