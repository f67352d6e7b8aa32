package service

import (
	"context"
	"fmt"

	"checkcheck/internal/model"
	"checkcheck/internal/otp"
	"checkcheck/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// SMSSender dispatches a text message to a phone number.
type SMSSender interface {
	Configured() bool
	Send(ctx context.Context, phone, text string) error
}

// resetService implements PasswordResetService.
type resetService struct {
	registry *otp.Registry
	sms      SMSSender
	users    repository.UserRepository
	logger   zerolog.Logger
}

// NewPasswordResetService creates a new password-reset service.
func NewPasswordResetService(registry *otp.Registry, sms SMSSender, users repository.UserRepository, logger zerolog.Logger) PasswordResetService {
	return &resetService{
		registry: registry,
		sms:      sms,
		users:    users,
		logger:   logger.With().Str("service", "password_reset").Logger(),
	}
}

// RequestCode issues a fresh code for phone and dispatches it by SMS. If
// the send fails the stored code is not rolled back; a retry simply
// overwrites it.
func (s *resetService) RequestCode(ctx context.Context, phone string) error {
	if !s.sms.Configured() {
		return model.ErrSMSNotConfigured
	}

	code := s.registry.Issue(phone)

	text := fmt.Sprintf("Your Check Check City password reset code is: %s. This code expires in 10 minutes.", code)
	if err := s.sms.Send(ctx, phone, text); err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("failed to send reset code")
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	s.logger.Info().Str("phone", phone).Msg("reset code sent")
	return nil
}

// VerifyCode checks a submitted code and opens the reset window. The code
// record itself is kept; it stays valid until the reset completes or a
// new code is requested.
func (s *resetService) VerifyCode(ctx context.Context, phone, code string) error {
	if err := s.registry.Check(phone, code); err != nil {
		s.logger.Warn().Err(err).Str("phone", phone).Msg("code verification failed")
		return err
	}

	s.registry.MarkVerified(phone)
	s.logger.Info().Str("phone", phone).Msg("reset code verified")
	return nil
}

// ResetPassword re-validates the code and sets the new password. Expiry
// is re-checked here so a code that lapsed between verify and reset is
// rejected rather than trusted on the earlier verification alone.
func (s *resetService) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	if err := s.registry.Check(phone, code); err != nil {
		s.logger.Warn().Err(err).Str("phone", phone).Msg("reset rejected")
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePasswordByPhone(ctx, phone, string(hash)); err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("failed to update password")
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.registry.Consume(phone)
	s.logger.Info().Str("phone", phone).Msg("password reset completed")
	return nil
}
