package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetStatsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatsOverview")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	filter, err := parseStatsFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.statsService.Overview(ctx, teamID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "stats overview failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) GetStatsTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatsTimeline")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	filter, err := parseStatsFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.statsService.Timeline(ctx, teamID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "stats timeline failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timelineToDTO(groups))
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	opponent := r.URL.Query().Get("opponent")

	record, err := h.statsService.HeadToHead(ctx, teamID, opponent)
	if err != nil {
		h.logger.WarnContext(ctx, "head-to-head failed", "team_id", teamID, "opponent", opponent, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(record))
}

func (h *Handler) GetStatsFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatsFilters")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	options, err := h.statsService.FilterOptions(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "stats filter options failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsToDTO(options))
}
