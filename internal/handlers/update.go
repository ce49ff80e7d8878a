package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

//go:generate mockgen -source=update.go -destination=update_mock.go -package=handlers

// SubscriptionUpdater defines the interface that the service must implement.
type SubscriptionUpdater interface {
	Update(ctx context.Context, sub models.Subscription) error
}

// NewUpdateSubscriptionHandler returns an HTTP handler replacing a subscription.
// @Summary Update subscription
// @Description Replaces every field of the subscription. The body id must equal the path id.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body models.Subscription true "Subscription"
// @Success 204 "Updated"
// @Failure 400 {object} models.ErrorResponse "Invalid id, id mismatch or invalid request body"
// @Failure 404 {object} models.ErrorResponse "Subscription not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions/{id} [put]
func NewUpdateSubscriptionHandler(svc SubscriptionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			logger.Log.Warnw("invalid subscription id", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req models.Subscription
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode update subscription request", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if req.ID != id {
			logger.Log.Warnw("subscription id mismatch", "path_id", id, "body_id", req.ID)
			writeError(w, http.StatusBadRequest, msgIDMismatch)
			return
		}

		if err := svc.Update(r.Context(), req); err != nil {
			if errors.Is(err, services.ErrSubscriptionNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			logger.Log.Errorw("failed to update subscription", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
