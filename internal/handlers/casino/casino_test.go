package casino

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"senabet/internal/domain"
	"senabet/internal/dto"
	"senabet/internal/service/casinoservice"
	"senabet/pkg/auth"
	"senabet/pkg/utils"
)

func NewMock(t *testing.T) (*CasinoHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(ctx)
}

func TestPlayRouletteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expected      *dto.RouletteResponseDTO
		expectedError string
	}{
		{
			name: "Winning round",
			body: `{"wager":20,"choice":"red"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, 20.0, "red").Return(&casinoservice.RouletteResult{
					Number:     3,
					Won:        true,
					Payout:     40.0,
					NewBalance: 120.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     &dto.RouletteResponseDTO{Number: 3, Won: true, Payout: 40.0, NewBalance: 120.0},
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid wager",
			body: `{"wager":-5,"choice":"red"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, -5.0, "red").Return(nil, casinoservice.ErrInvalidWager)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: casinoservice.ErrInvalidWager.Error(),
		},
		{
			name: "Invalid choice",
			body: `{"wager":20,"choice":"green"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, 20.0, "green").Return(nil, casinoservice.ErrInvalidChoice)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: casinoservice.ErrInvalidChoice.Error(),
		},
		{
			name: "Insufficient balance",
			body: `{"wager":500,"choice":"red"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, 500.0, "red").Return(nil, casinoservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: casinoservice.ErrInsufficientBalance.Error(),
		},
		{
			name: "User not found",
			body: `{"wager":20,"choice":"red"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, 20.0, "red").Return(nil, casinoservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: casinoservice.ErrUserNotFound.Error(),
		},
		{
			name: "Internal server error",
			body: `{"wager":20,"choice":"red"}`,
			prepareMock: func() {
				service.EXPECT().PlayRoulette(gomock.Any(), 1, 20.0, "red").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/casino/roulette", tt.body)
			rr := httptest.NewRecorder()

			handler.PlayRoulette(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.RouletteResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expected, resp)
			}
		})
	}
}

func TestStartCrashHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expected      *dto.CrashStartResponseDTO
		expectedError string
	}{
		{
			name: "Round started",
			body: `{"wager":20}`,
			prepareMock: func() {
				service.EXPECT().StartCrash(gomock.Any(), 1, 20.0).Return(&casinoservice.CrashStartResult{
					Handle:     "round-1",
					NewBalance: 80.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     &dto.CrashStartResponseDTO{Handle: "round-1", NewBalance: 80.0},
		},
		{
			name: "Insufficient balance",
			body: `{"wager":500}`,
			prepareMock: func() {
				service.EXPECT().StartCrash(gomock.Any(), 1, 500.0).Return(nil, casinoservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: casinoservice.ErrInsufficientBalance.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/casino/crash/start", tt.body)
			rr := httptest.NewRecorder()

			handler.StartCrash(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.CrashStartResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expected, resp)
			}
		})
	}
}

func TestCashOutCrashHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expected      *dto.CrashCashOutResponseDTO
		expectedError string
	}{
		{
			name: "Successful cash-out",
			body: `{"handle":"round-1"}`,
			prepareMock: func() {
				service.EXPECT().CashOutCrash(gomock.Any(), 1, "round-1").Return(&casinoservice.CrashResult{
					CashedOut:  true,
					Multiplier: 1.42,
					Payout:     28.4,
					NewBalance: 108.4,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     &dto.CrashCashOutResponseDTO{CashedOut: true, Multiplier: 1.42, Payout: 28.4, NewBalance: 108.4},
		},
		{
			name: "Crashed round still reports the balance",
			body: `{"handle":"round-2"}`,
			prepareMock: func() {
				service.EXPECT().CashOutCrash(gomock.Any(), 1, "round-2").Return(&casinoservice.CrashResult{
					CashedOut:  false,
					Multiplier: 0,
					Payout:     0,
					NewBalance: 80.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     &dto.CrashCashOutResponseDTO{CashedOut: false, Multiplier: 0, Payout: 0, NewBalance: 80.0},
		},
		{
			name: "Round not found",
			body: `{"handle":"missing"}`,
			prepareMock: func() {
				service.EXPECT().CashOutCrash(gomock.Any(), 1, "missing").Return(nil, casinoservice.ErrRoundNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: casinoservice.ErrRoundNotFound.Error(),
		},
		{
			name: "Round already settled",
			body: `{"handle":"round-1"}`,
			prepareMock: func() {
				service.EXPECT().CashOutCrash(gomock.Any(), 1, "round-1").Return(nil, casinoservice.ErrRoundSettled)
			},
			expectedCode:  http.StatusConflict,
			expectedError: casinoservice.ErrRoundSettled.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/casino/crash/cashout", tt.body)
			rr := httptest.NewRecorder()

			handler.CashOutCrash(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.CrashCashOutResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expected, resp)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     []dto.CasinoRoundResponseDTO
	}{
		{
			name: "History returned newest first",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return([]domain.CasinoRound{
					{ID: 2, UserID: 1, GameVariant: domain.GameVariantCrash, WagerAmount: 20.0, PayoutAmount: 22.0, Details: json.RawMessage(`{"cashed_out":true}`), CreatedAt: now},
					{ID: 1, UserID: 1, GameVariant: domain.GameVariantRoulette, WagerAmount: 10.0, PayoutAmount: 0.0, Details: json.RawMessage(`{"won":false}`), CreatedAt: now.Add(-time.Hour)},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected: []dto.CasinoRoundResponseDTO{
				{GameVariant: domain.GameVariantCrash, Wager: 20.0, Payout: 22.0, Details: json.RawMessage(`{"cashed_out":true}`), CreatedAt: now},
				{GameVariant: domain.GameVariantRoulette, Wager: 10.0, Payout: 0.0, Details: json.RawMessage(`{"won":false}`), CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "No rounds yet",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/user/casino/history", "")
			rr := httptest.NewRecorder()

			handler.GetHistory(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expected != nil {
				var resp []dto.CasinoRoundResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}
