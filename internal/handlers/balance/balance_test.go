package balance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "returns subtotals and total",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID:           1,
					MiningSubtotal:   480,
					TaskSubtotal:     200,
					SocialSubtotal:   150,
					ReferralSubtotal: 100,
					Total:            930,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"mining":480,"task":200,"social":150,"referral":100,"total":930}`,
		},
		{
			name: "fresh account reads as zeros",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"mining":0,"task":0,"social":0,"referral":0,"total":0}`,
		},
		{
			name: "service error maps to 500",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
			rec := httptest.NewRecorder()
			handler.GetBalance(rec, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}
