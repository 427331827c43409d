package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeamProfile)
	mux.HandleFunc("GET /v1/teams/{teamID}/logo", handler.ResolveTeamLogo)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/free", handler.ListFreeAgents)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/matches", handler.RecordCompletedGame)
	mux.HandleFunc("GET /v1/matches/{matchID}/detail", handler.GetMatchDetail)
	mux.HandleFunc("POST /v1/matches/{matchID}/analyst", handler.BookAnalyst)

	mux.HandleFunc("GET /v1/search", handler.Search)
	mux.HandleFunc("GET /v1/history", handler.HistorySnapshot)
	mux.HandleFunc("GET /v1/fan/dashboard", handler.FanDashboard)
	mux.HandleFunc("POST /v1/team-stats", handler.TeamFullStats)
	mux.HandleFunc("GET /v1/player-stats", handler.ListPlayerStats)
	mux.HandleFunc("POST /v1/player-stats", handler.RecordPlayerStatLine)

	mux.HandleFunc("GET /v1/sports/leagues", handler.ListSportsLeagues)
	mux.HandleFunc("GET /v1/sports/teams", handler.ListSportsTeams)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/users", RequireAuth(verifier, http.HandlerFunc(handler.RegisterUser)))
	mux.Handle("GET /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.CheckUser)))

	mux.Handle("POST /v1/coach/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateCoachTeam)))
	mux.Handle("GET /v1/coach/me", RequireAuth(verifier, http.HandlerFunc(handler.CoachCheck)))
	mux.Handle("GET /v1/coach/players", RequireAuth(verifier, http.HandlerFunc(handler.ListCoachPlayers)))
	mux.Handle("GET /v1/coach/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListCoachMatches)))
	mux.Handle("POST /v1/coach/players/assign", RequireAuth(verifier, http.HandlerFunc(handler.AssignPlayer)))

	mux.Handle("GET /v1/analyst/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListAnalystMatches)))

	mux.Handle("GET /v1/lineups/default", RequireAuth(verifier, http.HandlerFunc(handler.GetDefaultLineup)))
	mux.Handle("PUT /v1/lineups/default", RequireAuth(verifier, http.HandlerFunc(handler.SaveDefaultLineup)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/backfill-logos", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLogoBackfillJob)))
}
