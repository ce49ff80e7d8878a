package models

// SkippedRow reports a CSV line that produced no record.
// swagger:model SkippedRow
type SkippedRow struct {
	// 1-based line number in the uploaded file
	// example: 3
	Line int `json:"line"`

	// Why the line was dropped
	// example: expected at least 7 fields, got 2
	Reason string `json:"reason"`
}

// DefaultedField reports a CSV value that failed to parse and was replaced by a default.
// swagger:model DefaultedField
type DefaultedField struct {
	// 1-based line number in the uploaded file
	// example: 2
	Line int `json:"line"`

	// Field name
	// example: monthlyCost
	Field string `json:"field"`

	// Raw value as found in the file
	// example: n/a
	Value string `json:"value"`
}

// UploadCSVResponse represents a successful CSV import
// swagger:model UploadCSVResponse
type UploadCSVResponse struct {
	// Number of imported subscriptions
	// example: 1
	Count int `json:"count"`

	// Lines that were dropped
	Skipped []SkippedRow `json:"skipped"`

	// Values that were replaced by defaults
	Defaulted []DefaultedField `json:"defaulted"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Subscription not found
	Error string `json:"error"`
}
