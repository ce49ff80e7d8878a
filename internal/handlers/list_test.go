package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

func TestListSubscriptionsHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockSubscriptionLister)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "subscriptions",
			setupMocks: func(m *MockSubscriptionLister) {
				m.EXPECT().List(gomock.Any()).Return([]models.Subscription{
					{ID: 1, Name: "Netflix", MonthlyCost: decimal.RequireFromString("15.99")},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "empty collection",
			setupMocks: func(m *MockSubscriptionLister) {
				m.EXPECT().List(gomock.Any()).Return([]models.Subscription{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "[]\n",
		},
		{
			name: "storage error",
			setupMocks: func(m *MockSubscriptionLister) {
				m.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockSubscriptionLister(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil)
			rr := httptest.NewRecorder()

			NewListSubscriptionsHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestListSubscriptionsHandler_Body(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockSubscriptionLister(ctrl)
	m.EXPECT().List(gomock.Any()).Return([]models.Subscription{
		{ID: 1, Name: "Netflix", MonthlyCost: decimal.RequireFromString("15.99")},
		{ID: 2, Name: "Spotify", MonthlyCost: decimal.RequireFromString("9.99")},
	}, nil)

	rr := httptest.NewRecorder()
	NewListSubscriptionsHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil))

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, float64(1), resp[0]["id"])
	assert.Equal(t, 15.99, resp[0]["monthlyCost"])
	assert.Equal(t, "Spotify", resp[1]["name"])
}
