package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aribowo/matchday-tracker/internal/usecase"
)

type Handler struct {
	teamService   *usecase.TeamService
	matchService  *usecase.MatchService
	statsService  *usecase.StatsService
	importService *usecase.ImportService
	warmupService *usecase.WarmupService
	logger        *slog.Logger
	validator     *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	statsService *usecase.StatsService,
	importService *usecase.ImportService,
	warmupService *usecase.WarmupService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		teamService:   teamService,
		matchService:  matchService,
		statsService:  statsService,
		importService: importService,
		warmupService: warmupService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
