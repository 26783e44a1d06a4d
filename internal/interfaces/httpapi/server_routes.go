package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/matches", handler.ListMatchesByTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/matches/{matchID}", handler.GetMatch)

	// The stats routes also accept the pseudo team id "all".
	mux.HandleFunc("GET /v1/teams/{teamID}/stats/overview", handler.GetStatsOverview)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats/timeline", handler.GetStatsTimeline)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats/filters", handler.GetStatsFilters)
}

func registerWriteRoutes(mux *http.ServeMux, handler *Handler, apiToken string) {
	mux.Handle("POST /v1/teams/{teamID}/matches", RequireAPIToken(apiToken, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT /v1/teams/{teamID}/matches/{matchID}", RequireAPIToken(apiToken, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("POST /v1/teams/{teamID}/matches/{matchID}/result", RequireAPIToken(apiToken, http.HandlerFunc(handler.RecordMatchResult)))
	mux.Handle("DELETE /v1/teams/{teamID}/matches/{matchID}", RequireAPIToken(apiToken, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/teams/{teamID}/matches/import", RequireAPIToken(apiToken, http.HandlerFunc(handler.ImportTeamFixtures)))
}

func registerJobRoutes(mux *http.ServeMux, handler *Handler, apiToken string) {
	mux.Handle("POST /v1/internal/jobs/import-fixtures", RequireAPIToken(apiToken, http.HandlerFunc(handler.RunImportFixturesJob)))
	mux.Handle("POST /v1/internal/jobs/warmup", RequireAPIToken(apiToken, http.HandlerFunc(handler.RunWarmupJob)))
}
