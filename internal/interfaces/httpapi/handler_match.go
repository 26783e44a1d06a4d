package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/usecase"
)

type scorerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Goals    int    `json:"goals" validate:"min=0"`
}

type matchResultRequest struct {
	ScoreFor      int             `json:"scoreFor" validate:"min=0"`
	ScoreAgainst  int             `json:"scoreAgainst" validate:"min=0"`
	PlayerGoals   int             `json:"playerGoals" validate:"min=0"`
	PlayerAssists int             `json:"playerAssists" validate:"min=0"`
	Rating        *float64        `json:"rating" validate:"omitempty,min=0,max=10"`
	ManOfTheMatch bool            `json:"manOfTheMatch"`
	Scorers       []scorerRequest `json:"scorers" validate:"dive"`
	VideoLinks    []string        `json:"videoLinks" validate:"dive,url"`
	Notes         string          `json:"notes"`
}

type createMatchRequest struct {
	Date     string `json:"date" validate:"required"`
	Opponent string `json:"opponent" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=league cup friendly"`
	Status   string `json:"status" validate:"omitempty,oneof=scheduled completed"`
	matchResultRequest
}

type updateMatchRequest struct {
	Date     string `json:"date" validate:"required"`
	Opponent string `json:"opponent" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=league cup friendly"`
	matchResultRequest
}

func (h *Handler) ListMatchesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	records, err := h.matchService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(records))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	record, err := h.matchService.Get(ctx, teamID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "team_id", teamID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(record))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req createMatchRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record := match.Record{
		TeamID:        teamID,
		Date:          date,
		Status:        req.Status,
		Opponent:      req.Opponent,
		Type:          req.Type,
		ScoreFor:      req.ScoreFor,
		ScoreAgainst:  req.ScoreAgainst,
		PlayerGoals:   req.PlayerGoals,
		PlayerAssists: req.PlayerAssists,
		Rating:        req.Rating,
		ManOfTheMatch: req.ManOfTheMatch,
		Scorers:       scorersFromRequest(req.Scorers),
		VideoLinks:    req.VideoLinks,
		Notes:         req.Notes,
	}

	created, err := h.matchService.Create(ctx, record)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req updateMatchRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record := match.Record{
		ID:            matchID,
		TeamID:        teamID,
		Date:          date,
		Opponent:      req.Opponent,
		Type:          req.Type,
		ScoreFor:      req.ScoreFor,
		ScoreAgainst:  req.ScoreAgainst,
		PlayerGoals:   req.PlayerGoals,
		PlayerAssists: req.PlayerAssists,
		Rating:        req.Rating,
		ManOfTheMatch: req.ManOfTheMatch,
		Scorers:       scorersFromRequest(req.Scorers),
		VideoLinks:    req.VideoLinks,
		Notes:         req.Notes,
	}

	updated, err := h.matchService.Update(ctx, record)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "team_id", teamID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req matchResultRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	completed, err := h.matchService.RecordResult(ctx, teamID, matchID, usecase.MatchResult{
		ScoreFor:      req.ScoreFor,
		ScoreAgainst:  req.ScoreAgainst,
		PlayerGoals:   req.PlayerGoals,
		PlayerAssists: req.PlayerAssists,
		Rating:        req.Rating,
		ManOfTheMatch: req.ManOfTheMatch,
		Scorers:       scorersFromRequest(req.Scorers),
		VideoLinks:    req.VideoLinks,
		Notes:         req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "team_id", teamID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(completed))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	if err := h.matchService.Delete(ctx, teamID, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "team_id", teamID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

type importResultDTO struct {
	TeamID   string `json:"teamId"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) ImportTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportTeamFixtures")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	result, err := h.importService.ImportTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture import failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		TeamID:   result.TeamID,
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
}

func (h *Handler) RunImportFixturesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunImportFixturesJob")
	defer span.End()

	results, err := h.importService.ImportAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "fixture import job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]importResultDTO, 0, len(results))
	for _, result := range results {
		item := importResultDTO{
			TeamID:   result.TeamID,
			Imported: result.Imported,
			Skipped:  result.Skipped,
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		items = append(items, item)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunWarmupJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmupJob")
	defer span.End()

	warmed, err := h.warmupService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "warmup job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"warmed": warmed})
}

func scorersFromRequest(scorers []scorerRequest) []match.ScorerEntry {
	if len(scorers) == 0 {
		return nil
	}
	out := make([]match.ScorerEntry, 0, len(scorers))
	for _, scorer := range scorers {
		out = append(out, match.ScorerEntry{PlayerID: scorer.PlayerID, Goals: scorer.Goals})
	}
	return out
}
