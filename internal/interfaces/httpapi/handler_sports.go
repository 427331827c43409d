package httpapi

import (
	"net/http"
	"strings"
)

type externalLeagueDTO struct {
	LeagueKey   string `json:"leagueKey"`
	LeagueName  string `json:"leagueName"`
	CountryName string `json:"countryName,omitempty"`
}

type externalTeamDTO struct {
	TeamKey   string `json:"teamKey"`
	TeamName  string `json:"teamName"`
	LeagueKey string `json:"leagueKey,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

func (h *Handler) ListSportsLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportsLeagues")
	defer span.End()

	leagues, err := h.sportsService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list sports leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]externalLeagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, externalLeagueDTO{
			LeagueKey:   l.LeagueKey,
			LeagueName:  l.LeagueName,
			CountryName: l.CountryName,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSportsTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportsTeams")
	defer span.End()

	leagueKey := strings.TrimSpace(r.URL.Query().Get("leagueId"))
	teams, err := h.sportsService.ListTeams(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "list sports teams failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]externalTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, externalTeamDTO{
			TeamKey:   t.TeamKey,
			TeamName:  t.TeamName,
			LeagueKey: t.LeagueKey,
			LogoURL:   t.LogoURL,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
