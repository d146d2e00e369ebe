package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type Handler struct {
	statsService         *usecase.StatsService
	teamService          *usecase.TeamService
	fixtureService       *usecase.FixtureService
	seasonService        *usecase.SeasonService
	groupStandingService *usecase.GroupStandingService
	refreshService       *usecase.RefreshService
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	teamService *usecase.TeamService,
	fixtureService *usecase.FixtureService,
	seasonService *usecase.SeasonService,
	groupStandingService *usecase.GroupStandingService,
	refreshService *usecase.RefreshService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService:         statsService,
		teamService:          teamService,
		fixtureService:       fixtureService,
		seasonService:        seasonService,
		groupStandingService: groupStandingService,
		refreshService:       refreshService,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
