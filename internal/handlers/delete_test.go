package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"
)

func TestDeleteSubscriptionHandler(t *testing.T) {
	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockSubscriptionDeleter)
		expectedStatusCode int
	}{
		{
			name: "deleted",
			id:   "3",
			setupMocks: func(m *MockSubscriptionDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name:               "invalid id",
			id:                 "-",
			setupMocks:         func(m *MockSubscriptionDeleter) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "3",
			setupMocks: func(m *MockSubscriptionDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(3)).Return(services.ErrSubscriptionNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "storage error",
			id:   "3",
			setupMocks: func(m *MockSubscriptionDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(3)).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockSubscriptionDeleter(ctrl)
			tt.setupMocks(m)

			req := withID(httptest.NewRequest(http.MethodDelete, "/api/subscriptions/"+tt.id, nil), tt.id)
			rr := httptest.NewRecorder()

			NewDeleteSubscriptionHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if rr.Code != http.StatusNoContent {
				assert.NotEmpty(t, decodeError(t, rr))
			}
		})
	}
}
