package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionHandler(t *testing.T) {
	userID := uuid.New()
	ref := "txn_12345"
	amount := decimal.NewFromInt(199)
	created := &models.TransactionDB{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        models.WalletTopup,
		ReferenceID: &ref,
		CreatedAt:   time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		claims       *jwt.Claims
		inputBody    any
		mockSetup    func(m *MockTransactionCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name:      "created",
			claims:    &jwt.Claims{UserID: userID, Role: "user"},
			inputBody: `{"amount": 199, "type": "wallet_topup", "reference_id": "txn_12345"}`,
			mockSetup: func(m *MockTransactionCreator) {
				m.EXPECT().Create(gomock.Any(), userID, models.RoleUser, gomock.Any(), models.WalletTopup, &ref).
					DoAndReturn(func(_, _, _ any, a decimal.Decimal, _, _ any) (*models.TransactionDB, error) {
						assert.True(t, amount.Equal(a))
						return created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "no claims",
			inputBody:    `{"amount": 1, "type": "winning"}`,
			mockSetup:    func(m *MockTransactionCreator) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:         "invalid JSON",
			claims:       &jwt.Claims{UserID: userID, Role: "user"},
			inputBody:    `{"amount": "abc"`,
			mockSetup:    func(m *MockTransactionCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:      "admin forbidden",
			claims:    &jwt.Claims{UserID: userID, Role: "admin"},
			inputBody: `{"amount": 1, "type": "winning"}`,
			mockSetup: func(m *MockTransactionCreator) {
				m.EXPECT().Create(gomock.Any(), userID, models.RoleAdmin, gomock.Any(), models.Winning, nil).
					Return(nil, &services.Error{Kind: services.ErrForbidden, Msg: "Only users can perform transactions"})
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  "Only users can perform transactions",
		},
		{
			name:      "store failure",
			claims:    &jwt.Claims{UserID: userID, Role: "user"},
			inputBody: `{"amount": 1, "type": "winning"}`,
			mockSetup: func(m *MockTransactionCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &services.Error{Kind: services.ErrStoreFailure, Msg: "Failed to create transaction: timeout"})
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Failed to create transaction: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTransactionCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/user/create_transaction", encodeBody(t, tt.inputBody))
			if tt.claims != nil {
				req = req.WithContext(jwt.WithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()
			NewCreateTransactionHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var body ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedErr, body.Error)
				return
			}

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, created.ID.String(), resp["transaction_id"])
			assert.Equal(t, "wallet_topup", resp["type"])
			assert.Equal(t, "txn_12345", resp["reference_id"])
			assert.Equal(t, float64(199), resp["amount"])
		})
	}
}
