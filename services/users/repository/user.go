package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
)

const uniqueViolationCode = "23505"

// GetUserByID retrieves a user by its numeric id
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, role, enabled, COALESCE(password_hash, '') AS password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, role, enabled, COALESCE(password_hash, '') AS password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a new user. A duplicate username yields a conflict error.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (username, role, enabled, password_hash, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		user.Username,
		user.Role,
		user.Enabled,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("User already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FindOrCreateByUsername returns the existing user for the username or
// persists the given one. The users.username unique index is the only
// arbiter under concurrency: a duplicate-insert conflict means another
// request won the race, so the winner's row is re-read and returned.
func (r *UserRepo) FindOrCreateByUsername(ctx context.Context, user *models.User) (*models.User, bool, error) {
	existing, err := r.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return existing, false, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, false, err
	}

	if err := r.CreateUser(ctx, user); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			winner, rerr := r.GetUserByUsername(ctx, user.Username)
			return winner, false, rerr
		}
		return nil, false, err
	}

	return user, true, nil
}

// UpdateEnabled flips the enabled flag on a user
func (r *UserRepo) UpdateEnabled(ctx context.Context, id int64, enabled bool) error {
	query := `UPDATE users SET enabled = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

// DeleteUser removes a user by id
func (r *UserRepo) DeleteUser(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
