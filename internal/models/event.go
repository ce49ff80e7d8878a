package models

// Subscription event types.
const (
	EventCreated  = "created"
	EventUpdated  = "updated"
	EventDeleted  = "deleted"
	EventSeeded   = "seeded"
	EventImported = "imported"
)

// SubscriptionEvent describes a change to the subscriptions collection.
// It is published after the request transaction that made the change commits.
type SubscriptionEvent struct {
	EventID         string  `json:"event_id"`         // EventID is a unique identifier for the event.
	Type            string  `json:"type"`             // Type is one of created, updated, deleted, seeded, imported.
	SubscriptionIDs []int64 `json:"subscription_ids"` // SubscriptionIDs lists the affected records.
	Count           int     `json:"count"`            // Count is the number of affected records.
	Timestamp       int64   `json:"timestamp"`        // Timestamp is the Unix time (in seconds) of the change.
}
