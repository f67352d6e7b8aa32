package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkcheck/internal/model"
	"checkcheck/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// accountService implements AccountService.
type accountService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository, logger zerolog.Logger) AccountService {
	return &accountService{
		users:  users,
		logger: logger.With().Str("service", "account").Logger(),
	}
}

// LoginOrSignup authenticates or registers by phone.
//
// The operation infers intent from whether name/address were passed: a
// request with them against an existing phone is a rejected signup (no
// password check happens), one without them against a missing phone is a
// rejected login. This mirrors the observed storefront behaviour.
func (s *accountService) LoginOrSignup(ctx context.Context, phone, password, name, address string) (*model.User, error) {
	existing, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("failed to check for existing account")
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	if existing != nil {
		// Signup attempt against a registered phone fails before any
		// password comparison.
		if name != "" || address != "" {
			s.logger.Warn().Str("phone", phone).Msg("signup attempt for registered phone")
			return nil, model.ErrPhoneTaken
		}

		if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				s.logger.Warn().Str("phone", phone).Msg("login with wrong password")
				return nil, model.ErrInvalidPassword
			}
			return nil, fmt.Errorf("failed to compare password: %w", err)
		}

		s.logger.Info().Str("user_id", existing.ID.String()).Msg("login successful")
		return existing, nil
	}

	// No account: this must be a complete signup.
	if name == "" || address == "" || password == "" {
		return nil, model.ErrSignupFieldsMissing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Phone:        phone,
		Name:         name,
		Address:      address,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// A concurrent signup on the same phone loses the race here and
	// surfaces as model.ErrPhoneTaken from the repository.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrPhoneTaken) {
			return nil, model.ErrPhoneTaken
		}
		s.logger.Error().Err(err).Str("phone", phone).Msg("failed to create account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("account created")
	return user, nil
}

// UpdateProfile changes the name and address of an existing account.
func (s *accountService) UpdateProfile(ctx context.Context, id uuid.UUID, name, address string) (*model.User, error) {
	user, err := s.users.Update(ctx, id, name, address)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, model.NewDomainError(model.ErrCodeUnauthorised, "Account no longer exists")
	}

	s.logger.Info().Str("user_id", id.String()).Msg("profile updated")
	return user, nil
}
