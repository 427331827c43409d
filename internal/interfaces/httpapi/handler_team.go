package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	var ids []string
	if raw := strings.TrimSpace(r.URL.Query().Get("ids")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	teams, err := h.teamService.ListTeams(ctx, ids)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

type teamProfileDTO struct {
	Team    teamDTO     `json:"team"`
	Coach   *coachDTO   `json:"coach,omitempty"`
	Manager *userDTO    `json:"manager,omitempty"`
	Players []playerDTO `json:"players"`
	Matches []matchDTO  `json:"matches"`
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile")
	defer span.End()

	teamID := r.PathValue("teamID")
	profile, err := h.teamService.GetTeamProfile(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team profile failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := teamProfileDTO{
		Team:    teamToDTO(profile.Team),
		Players: playersToDTO(profile.Players),
		Matches: matchesToDTO(profile.Matches),
	}
	if profile.Coach != nil {
		dto := coachToDTO(*profile.Coach)
		out.Coach = &dto
	}
	if profile.Manager != nil {
		dto := userToDTO(*profile.Manager)
		out.Manager = &dto
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type teamLogoDTO struct {
	TeamID  string `json:"teamId"`
	LogoURL string `json:"logoUrl"`
	Partial bool   `json:"partial,omitempty"`
}

func (h *Handler) ResolveTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveTeamLogo")
	defer span.End()

	teamID := r.PathValue("teamID")
	result, err := h.teamLogoService.ResolveLogo(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve team logo failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamLogoDTO{
		TeamID:  teamID,
		LogoURL: result.LogoURL,
		Partial: result.Partial,
	})
}
