package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

//go:generate mockgen -source=create.go -destination=create_mock.go -package=handlers

// SubscriptionCreator defines the interface that the service must implement.
type SubscriptionCreator interface {
	Create(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
}

// NewCreateSubscriptionHandler returns an HTTP handler storing a new subscription.
// The id is assigned by storage; any id in the body is ignored.
// @Summary Create subscription
// @Description Creates a subscription. Missing timestamps default to now; timestamps are stored in UTC.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body models.Subscription true "Subscription"
// @Success 201 {object} models.Subscription "Created subscription"
// @Header 201 {string} Location "/api/subscriptions/{id}"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions [post]
func NewCreateSubscriptionHandler(svc SubscriptionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.Subscription
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create subscription request", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		created, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("failed to create subscription", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		w.Header().Set("Location", "/api/subscriptions/"+strconv.FormatInt(created.ID, 10))
		writeJSON(w, http.StatusCreated, created)
	}
}
