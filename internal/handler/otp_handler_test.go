package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkcheck/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPasswordResetService is a mock implementation of PasswordResetService.
type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) RequestCode(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockPasswordResetService) VerifyCode(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

func (m *MockPasswordResetService) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	args := m.Called(ctx, phone, code, newPassword)
	return args.Error(0)
}

func postJSON(t *testing.T, h http.HandlerFunc, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestOTPHandler_Send(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           map[string]string
		mockError      error
		expectedStatus int
		expectedMsg    string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           map[string]string{"phone": "0241234567"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP sent via SMS",
			expectService:  true,
		},
		{
			name:           "Missing phone",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Phone number required",
		},
		{
			name:           "SMS not configured",
			body:           map[string]string{"phone": "0241234567"},
			mockError:      model.ErrSMSNotConfigured,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Vonage credentials not configured",
			expectService:  true,
		},
		{
			name:           "Gateway failure",
			body:           map[string]string{"phone": "0241234567"},
			mockError:      errors.New("gateway timeout"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to send OTP",
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPasswordResetService)
			if tt.expectService {
				mockService.On("RequestCode", mock.Anything, "0241234567").Return(tt.mockError)
			}

			h := NewOTPHandler(mockService, logger)
			rec := postJSON(t, h.Send, http.MethodPost, "/otp/send", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMsg)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "RequestCode", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOTPHandler_Verify(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           map[string]string
		mockError      error
		expectedStatus int
		expectedMsg    string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           map[string]string{"phone": "0241234567", "otp": "123456"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP verified",
			expectService:  true,
		},
		{
			name:           "Missing fields",
			body:           map[string]string{"phone": "0241234567"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Phone and OTP required",
		},
		{
			name:           "No active code",
			body:           map[string]string{"phone": "0241234567", "otp": "123456"},
			mockError:      model.ErrNoActiveCode,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid or expired OTP",
			expectService:  true,
		},
		{
			name:           "Expired code",
			body:           map[string]string{"phone": "0241234567", "otp": "123456"},
			mockError:      model.ErrCodeHasExpired,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid or expired OTP",
			expectService:  true,
		},
		{
			name:           "Wrong code",
			body:           map[string]string{"phone": "0241234567", "otp": "123456"},
			mockError:      model.ErrCodeDoesNotMatch,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Incorrect OTP",
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPasswordResetService)
			if tt.expectService {
				mockService.On("VerifyCode", mock.Anything, "0241234567", "123456").Return(tt.mockError)
			}

			h := NewOTPHandler(mockService, logger)
			rec := postJSON(t, h.Verify, http.MethodPut, "/otp/verify", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMsg)
		})
	}
}

func TestOTPHandler_Reset(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           map[string]string
		mockError      error
		expectedStatus int
		expectedMsg    string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           map[string]string{"phone": "0241234567", "otp": "123456", "newPassword": "newsecret"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Password reset successfully",
			expectService:  true,
		},
		{
			name:           "Missing fields",
			body:           map[string]string{"phone": "0241234567", "otp": "123456"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Phone, OTP, and new password required",
		},
		{
			name:           "Password too short",
			body:           map[string]string{"phone": "0241234567", "otp": "123456", "newPassword": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password must be at least 6 characters",
		},
		{
			name:           "Stale code",
			body:           map[string]string{"phone": "0241234567", "otp": "123456", "newPassword": "newsecret"},
			mockError:      model.ErrCodeHasExpired,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid or expired OTP",
			expectService:  true,
		},
		{
			name:           "Store failure",
			body:           map[string]string{"phone": "0241234567", "otp": "123456", "newPassword": "newsecret"},
			mockError:      errors.New("database down"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to reset password",
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPasswordResetService)
			if tt.expectService {
				mockService.On("ResetPassword", mock.Anything, "0241234567", "123456", "newsecret").Return(tt.mockError)
			}

			h := NewOTPHandler(mockService, logger)
			rec := postJSON(t, h.Reset, http.MethodPost, "/otp/verify", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMsg)

			// Length validation happens before any service call.
			if !tt.expectService {
				mockService.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
