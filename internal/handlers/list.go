package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

//go:generate mockgen -source=list.go -destination=list_mock.go -package=handlers

// SubscriptionLister defines the interface that the service must implement.
type SubscriptionLister interface {
	List(ctx context.Context) ([]models.Subscription, error)
}

// NewListSubscriptionsHandler returns an HTTP handler listing every subscription.
// @Summary List subscriptions
// @Description Returns all subscriptions ordered by id
// @Tags subscriptions
// @Produce json
// @Success 200 {array} models.Subscription "Subscriptions"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions [get]
func NewListSubscriptionsHandler(svc SubscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list subscriptions", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, subs)
	}
}
