package httpapi

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/aribowo/matchday-tracker/internal/infrastructure/repository/memory"
	"github.com/aribowo/matchday-tracker/internal/platform/id"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
	"github.com/aribowo/matchday-tracker/internal/usecase"
)

const testAPIToken = "test-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())

	statsService := usecase.NewStatsService(teamRepo, matchRepo, nil, nil)
	matchService := usecase.NewMatchService(teamRepo, matchRepo, id.NewRandomGenerator(), statsService, logging.NewNop())
	teamService := usecase.NewTeamService(teamRepo)
	importService := usecase.NewImportService(teamRepo, matchRepo, matchService, nil, logging.NewNop())
	warmupService := usecase.NewWarmupService(teamRepo, statsService, logging.NewNop())

	handler := NewHandler(teamService, matchService, statsService, importService, warmupService, slog.Default())
	return NewRouter(handler, slog.Default(), nil, testAPIToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	teams, ok := body["data"].([]any)
	if !ok || len(teams) != 2 {
		t.Fatalf("expected 2 seeded teams, got %v", body["data"])
	}
}

func TestRouter_StatsOverview(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/"+memory.TeamIDLionsU12+"/stats/overview", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected overview object, got %v", body["data"])
	}
	summary, ok := data["summary"].(map[string]any)
	if !ok {
		t.Fatalf("expected summary object, got %v", data["summary"])
	}
	// Three completed seed matches for the Lions; the scheduled one is out.
	if got, _ := summary["matchesPlayed"].(float64); got != 3 {
		t.Fatalf("expected 3 matches played, got %v", summary["matchesPlayed"])
	}
}

func TestRouter_StatsOverviewRejectsBadWindow(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	target := "/v1/teams/" + memory.TeamIDLionsU12 + "/stats/overview?window=season&year=2026&quarter=9"
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_CreateMatchRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"date":"2026-10-03","opponent":"Harbor United"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDLionsU12+"/matches", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRouter_CreateAndCompleteMatch(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"date":"2026-10-03","opponent":"Harbor United"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDLionsU12+"/matches", strings.NewReader(payload))
	req.Header.Set("X-API-Token", testAPIToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeEnvelope(t, rec)["data"].(map[string]any)
	matchID, _ := created["id"].(string)
	if matchID == "" {
		t.Fatalf("expected generated match id, got %v", created)
	}
	if got, _ := created["status"].(string); got != "scheduled" {
		t.Fatalf("expected scheduled status, got %v", created["status"])
	}

	resultPayload := `{"scoreFor":2,"scoreAgainst":0,"playerGoals":1,"playerAssists":1,"rating":8}`
	req = httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDLionsU12+"/matches/"+matchID+"/result", strings.NewReader(resultPayload))
	req.Header.Set("X-API-Token", testAPIToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	completed := decodeEnvelope(t, rec)["data"].(map[string]any)
	if got, _ := completed["status"].(string); got != "completed" {
		t.Fatalf("expected completed status, got %v", completed["status"])
	}

	// Completing twice must conflict.
	req = httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDLionsU12+"/matches/"+matchID+"/result", strings.NewReader(resultPayload))
	req.Header.Set("X-API-Token", testAPIToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double completion, got %d", rec.Code)
	}
}

func TestRouter_ImportWithoutFeedIsUnavailable(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDLionsU12+"/matches/import", nil)
	req.Header.Set("X-API-Token", testAPIToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a configured feed, got %d", rec.Code)
	}
}
