package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

type registerUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Role      string `json:"role" validate:"required,oneof=Coach Analyst Fan"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req registerUserRequest
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

	created, err := h.userService.RegisterUser(ctx, usecase.RegisterUserInput{
		AuthUserID: principal.AuthUserID,
		Email:      principal.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       user.Role(req.Role),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "auth_user_id", principal.AuthUserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(created))
}

type userCheckDTO struct {
	User    userDTO   `json:"user"`
	Coach   *coachDTO `json:"coach,omitempty"`
	HasTeam bool      `json:"hasTeam"`
}

func (h *Handler) CheckUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckUser")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	check, err := h.userService.CheckUser(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "check user failed", "auth_user_id", principal.AuthUserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := userCheckDTO{
		User:    userToDTO(check.User),
		HasTeam: check.HasTeam,
	}
	if check.Coach != nil {
		dto := coachToDTO(*check.Coach)
		out.Coach = &dto
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
