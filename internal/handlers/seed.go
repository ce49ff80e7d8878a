package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=handlers

// SubscriptionSeeder defines the interface that the service must implement.
type SubscriptionSeeder interface {
	Seed(ctx context.Context) ([]models.Subscription, error)
}

// NewSeedSubscriptionsHandler returns an HTTP handler inserting demonstration data.
// @Summary Seed subscriptions
// @Description Inserts four demonstration subscriptions into an empty database
// @Tags subscriptions
// @Produce json
// @Success 200 {array} models.Subscription "Seeded subscriptions"
// @Failure 400 {object} models.ErrorResponse "Database already seeded."
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/subscriptions/seed [post]
func NewSeedSubscriptionsHandler(svc SubscriptionSeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := svc.Seed(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrAlreadySeeded) {
				writeError(w, http.StatusBadRequest, msgAlreadySeeded)
				return
			}
			logger.Log.Errorw("failed to seed subscriptions", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, subs)
	}
}
