package repository

import (
	"context"
	"errors"
	"fmt"

	"checkcheck/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// GetByPhone retrieves the account registered under phone, or nil if no
// account exists.
func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := `
		SELECT id, phone, name, address, password_hash, created_at
		FROM users
		WHERE phone = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, phone).Scan(
		&u.ID,
		&u.Phone,
		&u.Name,
		&u.Address,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("phone", phone).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// Create inserts a new account.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, phone, name, address, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Phone, user.Name, user.Address, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().Str("phone", user.Phone).Msg("phone already registered")
			return model.ErrPhoneTaken
		}
		r.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().Str("user_id", user.ID.String()).Msg("user created successfully")

	return nil
}

// Update changes the name and address of an account.
func (r *userRepository) Update(ctx context.Context, id uuid.UUID, name, address string) (*model.User, error) {
	query := `
		UPDATE users
		SET name = $2, address = $3
		WHERE id = $1
		RETURNING id, phone, name, address, password_hash, created_at
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id, name, address).Scan(
		&u.ID,
		&u.Phone,
		&u.Name,
		&u.Address,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("user_id", id.String()).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to update user")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &u, nil
}

// UpdatePasswordByPhone replaces the password hash of the account
// registered under phone. Matching no rows is not an error; the external
// directory contract is a plain filtered update.
func (r *userRepository) UpdatePasswordByPhone(ctx context.Context, phone, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2
		WHERE phone = $1
	`

	tag, err := r.pool.Exec(ctx, query, phone, passwordHash)
	if err != nil {
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to update password")
		return fmt.Errorf("failed to update password: %w", err)
	}

	r.logger.Debug().
		Str("phone", phone).
		Int64("rows_affected", tag.RowsAffected()).
		Msg("password updated")

	return nil
}
