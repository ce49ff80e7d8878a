package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/decoders"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

//go:generate mockgen -source=subscription.go -destination=subscription_mock.go -package=services

// Error variables
var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySeeded        = errors.New("database already seeded")
	ErrEmptyUpload          = errors.New("no file uploaded")
	ErrUnreadableUpload     = errors.New("uploaded file could not be read")
)

// SubscriptionReader defines read-only operations for subscriptions.
type SubscriptionReader interface {
	List(ctx context.Context) ([]models.Subscription, error)             // Returns all subscriptions ordered by id
	GetByID(ctx context.Context, id int64) (*models.Subscription, error) // Returns a subscription or sql.ErrNoRows
	Count(ctx context.Context) (int64, error)                            // Returns the number of subscriptions
}

// SubscriptionWriter defines write operations for subscriptions.
type SubscriptionWriter interface {
	Insert(ctx context.Context, sub models.Subscription) (*models.Subscription, error)          // Stores a draft
	InsertBatch(ctx context.Context, subs []models.Subscription) ([]models.Subscription, error) // Stores drafts as one unit
	Replace(ctx context.Context, sub models.Subscription) error                                 // Overwrites a record or returns sql.ErrNoRows
	DeleteByID(ctx context.Context, id int64) error                                             // Removes a record or returns sql.ErrNoRows
	LockSeed(ctx context.Context) error                                                         // Serializes seeding within the request transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SubscriptionService handles subscription operations and Kafka publishing.
type SubscriptionService struct {
	readRepo    SubscriptionReader
	writeRepo   SubscriptionWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	readRepo SubscriptionReader,
	writeRepo SubscriptionWriter,
	kafkaWriter KafkaWriter,
) *SubscriptionService {
	return &SubscriptionService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishEvent publishes a subscription change to Kafka once the request transaction commits.
func (s *SubscriptionService) publishEvent(ctx context.Context, eventType string, subs ...models.Subscription) {
	event := models.SubscriptionEvent{
		EventID:         uuid.NewString(),
		Type:            eventType,
		SubscriptionIDs: make([]int64, 0, len(subs)),
		Count:           len(subs),
		Timestamp:       s.now().Unix(),
	}
	for _, sub := range subs {
		event.SubscriptionIDs = append(event.SubscriptionIDs, sub.ID)
	}

	middlewares.OnCommit(ctx, func(ctx context.Context) {
		reqID := middlewares.GetRequestID(ctx)

		if s.kafkaWriter == nil {
			logger.Log.Warnw("Kafka writer not configured, skipping publishing", "request_id", reqID, "event_id", event.EventID, "type", eventType)
			return
		}

		data, err := json.Marshal(event)
		if err != nil {
			logger.Log.Errorw("Failed to marshal subscription event for Kafka", "request_id", reqID, "event_id", event.EventID, "error", err)
			return
		}

		msg := kafka.Message{
			Key:   []byte(event.EventID),
			Value: data,
		}

		if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish subscription event to Kafka", "request_id", reqID, "event_id", event.EventID, "error", err)
		} else {
			logger.Log.Infow("Subscription event published to Kafka", "request_id", reqID, "event_id", event.EventID, "type", eventType, "count", event.Count)
		}
	})
}

// List returns all subscriptions.
func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	subs, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list subscriptions", "error", err)
		return nil, err
	}
	return subs, nil
}

// Get returns the subscription with the given id.
func (s *SubscriptionService) Get(ctx context.Context, id int64) (*models.Subscription, error) {
	sub, err := s.readRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get subscription", "id", id, "error", err)
		return nil, err
	}
	return sub, nil
}

// Create stores a new subscription. Any id on the draft is ignored.
func (s *SubscriptionService) Create(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	sub.ID = 0
	sub.Normalize(s.now())

	created, err := s.writeRepo.Insert(ctx, sub)
	if err != nil {
		logger.Log.Errorw("failed to create subscription", "name", sub.Name, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventCreated, *created)
	return created, nil
}

// Update replaces every field of the subscription with sub.ID.
func (s *SubscriptionService) Update(ctx context.Context, sub models.Subscription) error {
	sub.Normalize(s.now())

	err := s.writeRepo.Replace(ctx, sub)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSubscriptionNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update subscription", "id", sub.ID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventUpdated, sub)
	return nil
}

// Delete removes the subscription with the given id.
func (s *SubscriptionService) Delete(ctx context.Context, id int64) error {
	err := s.writeRepo.DeleteByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSubscriptionNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete subscription", "id", id, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventDeleted, models.Subscription{ID: id})
	return nil
}

// Seed inserts the demonstration subscriptions into an empty collection.
// It must run inside a request transaction: the seed lock, the emptiness
// check and the insert commit together, so concurrent callers seed at most once.
func (s *SubscriptionService) Seed(ctx context.Context) ([]models.Subscription, error) {
	if err := s.writeRepo.LockSeed(ctx); err != nil {
		logger.Log.Errorw("failed to acquire seed lock", "error", err)
		return nil, err
	}

	count, err := s.readRepo.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count subscriptions", "error", err)
		return nil, err
	}
	if count > 0 {
		logger.Log.Warnw("seed refused, collection not empty", "count", count)
		return nil, ErrAlreadySeeded
	}

	created, err := s.writeRepo.InsertBatch(ctx, SeedSubscriptions(s.now()))
	if err != nil {
		logger.Log.Errorw("failed to insert seed subscriptions", "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventSeeded, created...)
	return created, nil
}

// ImportCSV decodes an uploaded CSV file and stores every accepted row in one batch.
// A zero size is rejected with ErrEmptyUpload; a stream that cannot be read
// is rejected with ErrUnreadableUpload. Malformed rows never fail the import.
func (s *SubscriptionService) ImportCSV(ctx context.Context, r io.Reader, size int64) (*models.UploadCSVResponse, error) {
	if r == nil || size == 0 {
		return nil, ErrEmptyUpload
	}

	decoded, err := decoders.DecodeSubscriptionsCSV(r, s.now())
	if err != nil {
		logger.Log.Warnw("failed to decode uploaded csv", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}

	created, err := s.writeRepo.InsertBatch(ctx, decoded.Records)
	if err != nil {
		logger.Log.Errorw("failed to insert imported subscriptions", "records", len(decoded.Records), "error", err)
		return nil, err
	}

	logger.Log.Infow("csv imported",
		"count", len(created),
		"skipped", len(decoded.Skipped),
		"defaulted", len(decoded.Defaulted),
	)

	if len(created) > 0 {
		s.publishEvent(ctx, models.EventImported, created...)
	}

	return &models.UploadCSVResponse{
		Count:     len(created),
		Skipped:   decoded.Skipped,
		Defaulted: decoded.Defaulted,
	}, nil
}

// SeedSubscriptions returns the demonstration drafts, renewing one month after now.
func SeedSubscriptions(now time.Time) []models.Subscription {
	now = now.UTC()
	renewal := now.AddDate(0, 1, 0)

	seed := []struct {
		name, provider, status, cost, category string
	}{
		{"Netflix", "Netflix", models.StatusActive, "15.99", models.CategoryEntertainment},
		{"Spotify", "Spotify", models.StatusActive, "9.99", models.CategoryMusic},
		{"AWS Free Tier", "Amazon Web Services", models.StatusTrial, "0.00", models.CategoryCloud},
		{"Notion", "Notion", models.StatusActive, "4.00", models.CategoryProductivity},
	}

	subs := make([]models.Subscription, 0, len(seed))
	for _, s := range seed {
		subs = append(subs, models.Subscription{
			Name:        s.name,
			Provider:    s.provider,
			Status:      s.status,
			MonthlyCost: decimal.RequireFromString(s.cost),
			RenewalDate: renewal,
			Owner:       "John Doe",
			Category:    s.category,
			CreatedAt:   now,
		})
	}
	return subs
}
