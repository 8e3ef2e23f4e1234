package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/pkg/apperrors"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, password, email, full_name, role, profile_image, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.ProfileImage,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, email, full_name, role, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Email, user.FullName, user.Role, user.ProfileImage,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translateWriteError(err, "user")
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// Update applies a partial patch to a user. Absent fields keep their stored
// values; a patch with no fields returns the row unchanged.
func (r *UserRepository) Update(ctx context.Context, id int64, patch *dto.UpdateUserRequest) (*models.User, error) {
	var b setBuilder
	if patch.Password != nil {
		b.set("password", *patch.Password)
	}
	if patch.Email != nil {
		b.set("email", *patch.Email)
	}
	if patch.FullName != nil {
		b.set("full_name", *patch.FullName)
	}
	if patch.Role != nil {
		b.set("role", *patch.Role)
	}
	if patch.ProfileImage != nil {
		b.set("profile_image", *patch.ProfileImage)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns, b.clause(), b.next())
	args := append(b.args, id)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("User")
		}
		return nil, translateWriteError(err, "user")
	}

	return user, nil
}
