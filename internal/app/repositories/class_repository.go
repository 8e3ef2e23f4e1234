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

// ClassRepository handles database operations for year cohorts.
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository.
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `id, program_id, year, created_at`

func scanClass(row pgx.Row) (*models.Class, error) {
	var c models.Class
	err := row.Scan(&c.ID, &c.ProgramID, &c.Year, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves classes, optionally filtered by program.
func (r *ClassRepository) GetAll(ctx context.Context, programID *int64) ([]*models.Class, error) {
	var b filterBuilder
	if programID != nil {
		b.add("program_id = $%d", *programID)
	}

	rows, err := r.db.Query(ctx, `SELECT `+classColumns+` FROM classes`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	return classes, rows.Err()
}

// GetByID retrieves a class by ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	class, err := scanClass(r.db.QueryRow(ctx, `SELECT `+classColumns+` FROM classes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Class")
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	return class, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (program_id, year)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, class.ProgramID, class.Year).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		return translateWriteError(err, "class")
	}

	return nil
}

// Update applies a partial patch to a class.
func (r *ClassRepository) Update(ctx context.Context, id int64, patch *dto.UpdateClassRequest) (*models.Class, error) {
	var b setBuilder
	if patch.ProgramID != nil {
		b.set("program_id", *patch.ProgramID)
	}
	if patch.Year != nil {
		b.set("year", *patch.Year)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE classes SET %s WHERE id = $%d RETURNING `+classColumns, b.clause(), b.next())
	args := append(b.args, id)

	class, err := scanClass(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Class")
		}
		return nil, translateWriteError(err, "class")
	}

	return class, nil
}

// Delete removes a class if no sections or fee structures reference it.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "class")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Class")
	}
	return nil
}
