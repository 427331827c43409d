package httpapi

import (
	"net/http"
	"strings"
)

type searchResultDTO struct {
	Players []playerDTO `json:"players"`
	Teams   []teamDTO   `json:"teams"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Search")
	defer span.End()

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	result, err := h.searchService.Search(ctx, term)
	if err != nil {
		h.logger.WarnContext(ctx, "search failed", "term", term, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, searchResultDTO{
		Players: playersToDTO(result.Players),
		Teams:   teamsToDTO(result.Teams),
	})
}

type historyTeamDTO struct {
	Team        teamDTO     `json:"team"`
	Players     []playerDTO `json:"players"`
	TotalPoints int         `json:"totalPoints"`
}

type historyMatchDTO struct {
	Match        matchDTO `json:"match"`
	HomeTeamName string   `json:"homeTeamName"`
	AwayTeamName string   `json:"awayTeamName"`
}

type historySnapshotDTO struct {
	Teams        []historyTeamDTO  `json:"teams"`
	Matches      []historyMatchDTO `json:"matches"`
	TotalTeams   int               `json:"totalTeams"`
	TotalPlayers int               `json:"totalPlayers"`
	TotalMatches int               `json:"totalMatches"`
}

func (h *Handler) HistorySnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HistorySnapshot")
	defer span.End()

	snapshot, err := h.historyService.Snapshot(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "history snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]historyTeamDTO, 0, len(snapshot.Teams))
	for _, item := range snapshot.Teams {
		teams = append(teams, historyTeamDTO{
			Team:        teamToDTO(item.Team),
			Players:     playersToDTO(item.Players),
			TotalPoints: item.TotalPoints,
		})
	}

	matches := make([]historyMatchDTO, 0, len(snapshot.Matches))
	for _, item := range snapshot.Matches {
		matches = append(matches, historyMatchDTO{
			Match:        matchToDTO(item.Match),
			HomeTeamName: item.HomeTeamName,
			AwayTeamName: item.AwayTeamName,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, historySnapshotDTO{
		Teams:        teams,
		Matches:      matches,
		TotalTeams:   snapshot.TotalTeams,
		TotalPlayers: snapshot.TotalPlayers,
		TotalMatches: snapshot.TotalMatches,
	})
}
