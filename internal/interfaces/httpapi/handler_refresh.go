package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-stats/internal/usecase"
)

type refreshRequest struct {
	SeasonID   string `json:"seasonId"`
	MaxWorkers int    `json:"maxWorkers" validate:"omitempty,gte=1,lte=32"`
}

func (h *Handler) RunRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefresh")
	defer span.End()

	payload := refreshRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := h.decodeRequest(ctx, r, &payload); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.refreshService.Refresh(ctx, usecase.RefreshInput{
		SeasonID:   payload.SeasonID,
		MaxWorkers: payload.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh failed", "season_id", payload.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "refresh completed",
		"seasons", result.SeasonCount,
		"tasks", result.TaskCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
