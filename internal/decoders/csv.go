package decoders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

// SubscriptionCSVFields is the number of positional fields a CSV row must carry:
// name, provider, status, monthlyCost, renewalDate, owner, category.
const SubscriptionCSVFields = 7

// maxLineSize bounds a single CSV line.
const maxLineSize = 1 << 20

// Skip reasons.
const (
	ReasonBlankLine   = "blank line"
	ReasonLineTooLong = "line too long"
)

// SubscriptionCSV is the outcome of decoding an uploaded CSV file.
type SubscriptionCSV struct {
	Records   []models.Subscription   // Accepted record drafts in input order
	Skipped   []models.SkippedRow     // Lines that produced no record
	Defaulted []models.DefaultedField // Values replaced by defaults
}

// DecodeSubscriptionsCSV reads subscription drafts from r.
//
// The first line is a header and is discarded without validation. Fields are
// split on commas with no quoting support. Invalid UTF-8 is replaced with
// U+FFFD. Rows with fewer than seven fields, blank rows and rows longer than
// 1 MiB are skipped; an unparseable monthlyCost becomes zero and an
// unparseable renewalDate becomes now. Every record gets createdAt = now.
// Only a failure to read r is returned as an error.
func DecodeSubscriptionsCSV(r io.Reader, now time.Time) (*SubscriptionCSV, error) {
	now = now.UTC()

	reader := bufio.NewReaderSize(r, 64*1024)

	result := &SubscriptionCSV{
		Records:   []models.Subscription{},
		Skipped:   []models.SkippedRow{},
		Defaulted: []models.DefaultedField{},
	}

	line := 0
	for {
		text, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line+1, err)
		}

		line++
		if line == 1 {
			continue
		}

		if tooLong {
			result.Skipped = append(result.Skipped, models.SkippedRow{Line: line, Reason: ReasonLineTooLong})
			continue
		}

		text = strings.ToValidUTF8(text, "\uFFFD")
		if isBlank(text) {
			result.Skipped = append(result.Skipped, models.SkippedRow{Line: line, Reason: ReasonBlankLine})
			continue
		}

		parts := strings.Split(text, ",")
		if len(parts) < SubscriptionCSVFields {
			result.Skipped = append(result.Skipped, models.SkippedRow{
				Line:   line,
				Reason: fmt.Sprintf("expected at least %d fields, got %d", SubscriptionCSVFields, len(parts)),
			})
			continue
		}

		sub := models.Subscription{
			Name:      parts[0],
			Provider:  parts[1],
			Status:    parts[2],
			Owner:     parts[5],
			Category:  parts[6],
			CreatedAt: now,
		}

		cost, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
		if err != nil {
			cost = decimal.Zero
			result.Defaulted = append(result.Defaulted, models.DefaultedField{Line: line, Field: "monthlyCost", Value: parts[3]})
		}
		sub.MonthlyCost = cost

		renewal, err := models.ParseTime(parts[4])
		if err != nil || renewal.IsZero() {
			renewal = now
			result.Defaulted = append(result.Defaulted, models.DefaultedField{Line: line, Field: "renewalDate", Value: parts[4]})
		}
		sub.RenewalDate = renewal

		result.Records = append(result.Records, sub)
	}

	return result, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is consumed in full and reported as too long.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}

		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// isBlank reports whether a line is empty, whitespace, or only empty comma-separated fields.
func isBlank(text string) bool {
	return strings.TrimSpace(strings.ReplaceAll(text, ",", "")) == ""
}
