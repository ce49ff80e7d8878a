package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantRenewal time.Time
		wantCreated time.Time
		wantErr     bool
	}{
		{
			name:        "plain date",
			body:        `{"name":"Spotify","monthlyCost":9.99,"renewalDate":"2025-01-01"}`,
			wantRenewal: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "rfc3339 with offset converted to utc",
			body:        `{"renewalDate":"2025-01-01T02:00:00+02:00","createdAt":"2024-12-01T00:00:00Z"}`,
			wantRenewal: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCreated: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "missing timestamps stay zero",
			body: `{"name":"Notion"}`,
		},
		{
			name:    "invalid timestamp",
			body:    `{"renewalDate":"not a date"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			body:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Subscription
			err := json.Unmarshal([]byte(tt.body), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantRenewal.Equal(s.RenewalDate), "renewalDate %v", s.RenewalDate)
			assert.True(t, tt.wantCreated.Equal(s.CreatedAt), "createdAt %v", s.CreatedAt)
		})
	}
}

func TestSubscription_UnmarshalJSON_Fields(t *testing.T) {
	body := `{"id":7,"name":"Netflix","provider":"Netflix","status":"Active","monthlyCost":15.99,` +
		`"renewalDate":"2025-02-01","owner":"John Doe","category":"Entertainment"}`

	var s Subscription
	require.NoError(t, json.Unmarshal([]byte(body), &s))

	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, "Netflix", s.Name)
	assert.Equal(t, "Netflix", s.Provider)
	assert.Equal(t, StatusActive, s.Status)
	assert.Equal(t, "15.99", s.MonthlyCost.String())
	assert.Equal(t, "John Doe", s.Owner)
	assert.Equal(t, CategoryEntertainment, s.Category)
}

func TestSubscription_MarshalJSON(t *testing.T) {
	s := Subscription{
		ID:          1,
		Name:        "Spotify",
		MonthlyCost: decimal.RequireFromString("9.99"),
		RenewalDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"monthlyCost":9.99`)
	assert.Contains(t, string(data), `"renewalDate":"2025-01-01T00:00:00Z"`)
	assert.Contains(t, string(data), `"createdAt":"2024-12-01T00:00:00Z"`)
}

func TestSubscription_Normalize(t *testing.T) {
	now := time.Date(2025, 6, 25, 8, 50, 20, 0, time.UTC)
	kyiv := time.FixedZone("UTC+3", 3*60*60)

	t.Run("zero timestamps default to now", func(t *testing.T) {
		s := Subscription{}
		s.Normalize(now)
		assert.Equal(t, now, s.RenewalDate)
		assert.Equal(t, now, s.CreatedAt)
	})

	t.Run("timestamps converted to utc", func(t *testing.T) {
		s := Subscription{
			RenewalDate: time.Date(2025, 7, 1, 3, 0, 0, 0, kyiv),
			CreatedAt:   time.Date(2025, 6, 1, 3, 0, 0, 0, kyiv),
		}
		s.Normalize(now)
		assert.Equal(t, time.UTC, s.RenewalDate.Location())
		assert.Equal(t, time.UTC, s.CreatedAt.Location())
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), s.RenewalDate)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), s.CreatedAt)
	})
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Time{}},
		{in: "  ", want: time.Time{}},
		{in: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: " 2025-01-01 ", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2025-01-01T10:30:00Z", want: time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)},
		{in: "2025-01-01 10:30:00", want: time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)},
		{in: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			if !got.IsZero() {
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}
