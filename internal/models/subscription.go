package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// monthlyCost is rendered as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Observed subscription statuses. Not enforced.
const (
	StatusActive  = "Active"
	StatusTrial   = "Trial"
	StatusExpired = "Expired"
)

// Observed subscription categories. Not enforced.
const (
	CategoryEntertainment = "Entertainment"
	CategoryMusic         = "Music"
	CategoryCloud         = "Cloud"
	CategoryProductivity  = "Productivity"
	CategoryOther         = "Other"
)

// Subscription represents a tracked subscription record.
// A Subscription with a zero ID is a draft not yet persisted.
// swagger:model Subscription
type Subscription struct {
	ID          int64           `json:"id" db:"id"`                     // Assigned by storage on create
	Name        string          `json:"name" db:"name"`                 // Display name
	Provider    string          `json:"provider" db:"provider"`         // Vendor providing the subscription
	Status      string          `json:"status" db:"status"`             // Active, Trial, Expired
	MonthlyCost decimal.Decimal `json:"monthlyCost" db:"monthly_cost"`  // Cost per month
	RenewalDate time.Time       `json:"renewalDate" db:"renewal_date"`  // Next renewal, UTC
	Owner       string          `json:"owner" db:"owner"`               // Person responsible
	Category    string          `json:"category" db:"category"`         // Entertainment, Music, Cloud, Productivity, Other
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`      // Creation timestamp, UTC
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as plain dates
// (for example "2025-01-01") for renewalDate and createdAt.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	type alias Subscription
	aux := struct {
		*alias
		RenewalDate string `json:"renewalDate"`
		CreatedAt   string `json:"createdAt"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	renewal, err := ParseTime(aux.RenewalDate)
	if err != nil {
		return fmt.Errorf("renewalDate: %w", err)
	}
	created, err := ParseTime(aux.CreatedAt)
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}

	s.RenewalDate = renewal
	s.CreatedAt = created
	return nil
}

// Normalize fills zero timestamps with now and converts both timestamps to UTC.
func (s *Subscription) Normalize(now time.Time) {
	if s.RenewalDate.IsZero() {
		s.RenewalDate = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.RenewalDate = s.RenewalDate.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
}
