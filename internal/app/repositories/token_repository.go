package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asadk/maktab/internal/pkg/apperrors"
)

// TokenRepository handles refresh token persistence.
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// CreateToken stores a refresh token for a user.
func (r *TokenRepository) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expiry_date, is_revoked)
		VALUES ($1, $2, $3, false)
	`

	_, err := r.db.Exec(ctx, query, token, userID, expiryDate)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// GetTokenUser resolves a refresh token to its user, rejecting revoked and
// expired tokens.
func (r *TokenRepository) GetTokenUser(ctx context.Context, token string) (int64, error) {
	var userID int64
	var expiryDate time.Time
	var isRevoked bool

	query := `SELECT user_id, expiry_date, is_revoked FROM refresh_tokens WHERE token = $1`
	err := r.db.QueryRow(ctx, query, token).Scan(&userID, &expiryDate, &isRevoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenInvalid
		}
		return 0, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if isRevoked {
		return 0, apperrors.ErrTokenInvalid
	}
	if expiryDate.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}

	return userID, nil
}

// RevokeToken marks a refresh token as no longer usable.
func (r *TokenRepository) RevokeToken(ctx context.Context, token string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET is_revoked = true WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenInvalid
	}
	return nil
}

// RevokeUserTokens revokes every outstanding refresh token for a user.
func (r *TokenRepository) RevokeUserTokens(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = true WHERE user_id = $1 AND is_revoked = false`, userID)
	if err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}

// DeleteExpiredTokens clears tokens past their expiry.
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expiry_date < now()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
