package service

import (
	"context"
	"errors"
	"testing"

	"checkcheck/internal/model"
	"checkcheck/internal/otp"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockSMSSender is a mock implementation of SMSSender.
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSMSSender) Send(ctx context.Context, phone, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}

func TestResetService_RequestCode_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	registry := otp.NewRegistry()
	users := new(MockUserRepository)

	var sentText string
	sms := new(MockSMSSender)
	sms.On("Configured").Return(true)
	sms.On("Send", ctx, "0241234567", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentText = args.String(2) }).
		Return(nil)

	svc := NewPasswordResetService(registry, sms, users, logger)
	err := svc.RequestCode(ctx, "0241234567")

	require.NoError(t, err)
	assert.Contains(t, sentText, "Your Check Check City password reset code is:")
	assert.Contains(t, sentText, "expires in 10 minutes")
	sms.AssertExpectations(t)
}

func TestResetService_RequestCode_NotConfigured(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	sms := new(MockSMSSender)
	sms.On("Configured").Return(false)

	svc := NewPasswordResetService(otp.NewRegistry(), sms, new(MockUserRepository), logger)
	err := svc.RequestCode(ctx, "0241234567")

	assert.ErrorIs(t, err, model.ErrSMSNotConfigured)
	sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetService_RequestCode_SendFailure(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	sms := new(MockSMSSender)
	sms.On("Configured").Return(true)
	sms.On("Send", ctx, "0241234567", mock.Anything).Return(errors.New("gateway timeout"))

	svc := NewPasswordResetService(otp.NewRegistry(), sms, new(MockUserRepository), logger)
	err := svc.RequestCode(ctx, "0241234567")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send reset code")
}

func TestResetService_FullFlow(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	registry := otp.NewRegistry()

	var sentText string
	sms := new(MockSMSSender)
	sms.On("Configured").Return(true)
	sms.On("Send", ctx, "0241234567", mock.Anything).
		Run(func(args mock.Arguments) { sentText = args.String(2) }).
		Return(nil)

	var storedHash string
	users := new(MockUserRepository)
	users.On("UpdatePasswordByPhone", ctx, "0241234567", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	svc := NewPasswordResetService(registry, sms, users, logger)

	// Step 1: request the code.
	require.NoError(t, svc.RequestCode(ctx, "0241234567"))
	code := sentText[len("Your Check Check City password reset code is: "):][:6]

	// Step 2: verify it. Verification does not consume the code.
	require.NoError(t, svc.VerifyCode(ctx, "0241234567", code))

	// Step 3: reset re-validates the same code and sets the password.
	require.NoError(t, svc.ResetPassword(ctx, "0241234567", code, "newsecret"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newsecret")))

	// The code is consumed by the reset; a second attempt fails.
	err := svc.ResetPassword(ctx, "0241234567", code, "another")
	assert.ErrorIs(t, err, model.ErrNoActiveCode)

	users.AssertNumberOfCalls(t, "UpdatePasswordByPhone", 1)
}

func TestResetService_VerifyCode_WrongCode(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	registry := otp.NewRegistry()
	code := registry.Issue("0241234567")

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	svc := NewPasswordResetService(registry, new(MockSMSSender), new(MockUserRepository), logger)
	err := svc.VerifyCode(ctx, "0241234567", wrong)

	assert.ErrorIs(t, err, model.ErrCodeDoesNotMatch)
}

func TestResetService_ResetPassword_NoActiveCode(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	users := new(MockUserRepository)
	svc := NewPasswordResetService(otp.NewRegistry(), new(MockSMSSender), users, logger)

	err := svc.ResetPassword(ctx, "0241234567", "123456", "newsecret")

	assert.ErrorIs(t, err, model.ErrNoActiveCode)
	users.AssertNotCalled(t, "UpdatePasswordByPhone", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetService_ResetPassword_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	registry := otp.NewRegistry()
	code := registry.Issue("0241234567")

	users := new(MockUserRepository)
	users.On("UpdatePasswordByPhone", ctx, "0241234567", mock.Anything).Return(errors.New("database down"))

	svc := NewPasswordResetService(registry, new(MockSMSSender), users, logger)
	err := svc.ResetPassword(ctx, "0241234567", code, "newsecret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update password")

	// The code survives a failed update so the customer can retry.
	assert.NoError(t, registry.Check("0241234567", code))
}
