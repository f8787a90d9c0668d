package arena

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/arxlab/arxpoints/internal/domain"
	arenaservice "github.com/arxlab/arxpoints/internal/service/arenaservice"
	"github.com/arxlab/arxpoints/pkg/auth"
)

func NewMock(t *testing.T) (*ArenaHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestStake(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "stake accepted",
			body: `{"battle_id":"b-1","side":"alpha","amount":100}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceStake(gomock.Any(), 1, "b-1", "alpha", int64(100)).
					Return(&domain.StakeVote{ID: 11, BattleID: "b-1", UserID: 1, Side: "alpha", Amount: 100}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "insufficient balance maps to 402",
			body: `{"battle_id":"b-1","side":"alpha","amount":100}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceStake(gomock.Any(), 1, "b-1", "alpha", int64(100)).
					Return(nil, arenaservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "settled battle maps to 409",
			body: `{"battle_id":"b-1","side":"alpha","amount":100}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceStake(gomock.Any(), 1, "b-1", "alpha", int64(100)).
					Return(nil, arenaservice.ErrBattleClosed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown battle maps to 404",
			body: `{"battle_id":"missing","side":"alpha","amount":100}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceStake(gomock.Any(), 1, "missing", "alpha", int64(100)).
					Return(nil, arenaservice.ErrBattleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid body",
			body:         `{notjson`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/user/arena/stake", bytes.NewBufferString(tt.body))
			ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
			rec := httptest.NewRecorder()
			handler.Stake(rec, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "settles and reports payouts",
			body: `{"battle_id":"b-1","winning_side":"alpha"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Settle(gomock.Any(), "b-1", "alpha").
					Return(&arenaservice.SettleResult{
						BattleID:    "b-1",
						WinningSide: "alpha",
						Status:      arenaservice.StatusSettled,
						TotalPool:   350,
						WinningPool: 150,
						Multiplier:  350.0 / 150.0,
						Payouts: []arenaservice.Payout{
							{UserID: 1, StakeID: 1, Amount: 234},
							{UserID: 3, StakeID: 3, Amount: 116},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "already settled is still 200",
			body: `{"battle_id":"b-1","winning_side":"alpha"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Settle(gomock.Any(), "b-1", "alpha").
					Return(&arenaservice.SettleResult{
						BattleID:    "b-1",
						WinningSide: "beta",
						Status:      arenaservice.StatusAlreadySettled,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "transient failure maps to 503",
			body: `{"battle_id":"b-1","winning_side":"alpha"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Settle(gomock.Any(), "b-1", "alpha").
					Return(nil, arenaservice.ErrTransientStore)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "invalid body",
			body:         `{notjson`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/arena/settle", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.Settle(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
