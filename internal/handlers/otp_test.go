package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTPHandler(t *testing.T) {
	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func(m *MockOTPRequester)
		expectedCode int
		expectedKey  string
	}{
		{
			name:      "sent",
			inputBody: models.SendOTPRequest{MobileNumber: "9876543210"},
			mockSetup: func(m *MockOTPRequester) {
				m.EXPECT().SendOTP(gomock.Any(), "9876543210").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedKey:  "message",
		},
		{
			name:         "invalid JSON",
			inputBody:    "nope",
			mockSetup:    func(m *MockOTPRequester) {},
			expectedCode: http.StatusBadRequest,
			expectedKey:  "error",
		},
		{
			name:      "invalid mobile",
			inputBody: models.SendOTPRequest{MobileNumber: "12"},
			mockSetup: func(m *MockOTPRequester) {
				m.EXPECT().SendOTP(gomock.Any(), "12").
					Return(&services.Error{Kind: services.ErrInvalidArgument, Msg: "invalid mobile number"})
			},
			expectedCode: http.StatusBadRequest,
			expectedKey:  "error",
		},
		{
			name:      "store failure",
			inputBody: models.SendOTPRequest{MobileNumber: "9876543210"},
			mockSetup: func(m *MockOTPRequester) {
				m.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
					Return(&services.Error{Kind: services.ErrStoreFailure, Msg: "failed to store otp: redis down"})
			},
			expectedCode: http.StatusInternalServerError,
			expectedKey:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockOTPRequester(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/otp/send", encodeBody(t, tt.inputBody))
			rr := httptest.NewRecorder()
			NewSendOTPHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestVerifyOTPHandler(t *testing.T) {
	mobile := "9876543210"

	t.Run("verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := models.UserDB{UserID: uuid.New(), Name: mobile, MobileNumber: &mobile, Role: models.RoleUser, IsVerified: true}
		mockSvc := NewMockOTPVerifier(ctrl)
		mockSvc.EXPECT().VerifyOTP(gomock.Any(), mobile, "123456").Return(&models.AuthResult{Token: "tok", User: user}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify",
			encodeBody(t, models.VerifyOTPRequest{MobileNumber: mobile, OTP: "123456"}))
		rr := httptest.NewRecorder()
		NewVerifyOTPHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.VerifyOTPResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "tok", resp.AccessToken)
		assert.Equal(t, TokenType, resp.TokenType)
		assert.Equal(t, &mobile, resp.User.MobileNumber)
		assert.Nil(t, resp.User.Email)
	})

	t.Run("invalid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockOTPVerifier(ctrl)
		mockSvc.EXPECT().VerifyOTP(gomock.Any(), mobile, "000000").Return(nil, services.ErrInvalidOTP)

		req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify",
			encodeBody(t, models.VerifyOTPRequest{MobileNumber: mobile, OTP: "000000"}))
		rr := httptest.NewRecorder()
		NewVerifyOTPHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "Invalid or expired OTP", body.Error)
	})
}
