package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/leaderboards", handler.GetLeaderboards)
	mux.HandleFunc("GET /v1/stats/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/stats/teams", handler.GetTeamTables)
	mux.HandleFunc("GET /v1/stats/competitions", handler.ListCompetitions)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)

	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.GetGroupStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/qualifiers", handler.GetQualifiers)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(h))
	}

	mux.Handle("POST /v1/seasons", admin(handler.CreateSeason))
	mux.Handle("PUT /v1/seasons/{seasonID}", admin(handler.UpdateSeason))
	mux.Handle("DELETE /v1/seasons/{seasonID}", admin(handler.DeleteSeason))
	mux.Handle("POST /v1/seasons/{seasonID}/groups/{groupID}/teams", admin(handler.AssignTeamToGroup))
	mux.Handle("DELETE /v1/seasons/{seasonID}/groups/{groupID}/teams/{teamID}", admin(handler.RemoveTeamFromGroup))
	mux.Handle("PUT /v1/seasons/{seasonID}/knockout", admin(handler.SetSeasonKnockout))
	mux.Handle("POST /v1/seasons/{seasonID}/save", admin(handler.SaveSeason))
	mux.Handle("POST /v1/seasons/{seasonID}/activate", admin(handler.ActivateSeason))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/refresh", RequireInternalToken(internalToken, http.HandlerFunc(handler.RunRefresh)))
}
