package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

//go:generate mockgen -source=delete.go -destination=delete_mock.go -package=handlers

// SubscriptionDeleter defines the interface that the service must implement.
type SubscriptionDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteSubscriptionHandler returns an HTTP handler removing a subscription.
// @Summary Delete subscription
// @Tags subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid subscription id"
// @Failure 404 {object} models.ErrorResponse "Subscription not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions/{id} [delete]
func NewDeleteSubscriptionHandler(svc SubscriptionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			logger.Log.Warnw("invalid subscription id", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrSubscriptionNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			logger.Log.Errorw("failed to delete subscription", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
