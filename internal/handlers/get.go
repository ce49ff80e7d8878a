package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

//go:generate mockgen -source=get.go -destination=get_mock.go -package=handlers

// SubscriptionGetter defines the interface that the service must implement.
type SubscriptionGetter interface {
	Get(ctx context.Context, id int64) (*models.Subscription, error)
}

// NewGetSubscriptionHandler returns an HTTP handler fetching one subscription.
// @Summary Get subscription
// @Description Returns the subscription with the given id
// @Tags subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} models.Subscription "Subscription"
// @Failure 400 {object} models.ErrorResponse "Invalid subscription id"
// @Failure 404 {object} models.ErrorResponse "Subscription not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions/{id} [get]
func NewGetSubscriptionHandler(svc SubscriptionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			logger.Log.Warnw("invalid subscription id", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		sub, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrSubscriptionNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			logger.Log.Errorw("failed to get subscription", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, sub)
	}
}
