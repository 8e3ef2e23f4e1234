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

// ProgramRepository handles database operations for academic programs.
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

const programColumns = `id, name, code, description, created_at`

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves all programs.
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	rows, err := r.db.Query(ctx, `SELECT `+programColumns+` FROM programs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	return programs, rows.Err()
}

// GetByID retrieves a program by ID.
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	program, err := scanProgram(r.db.QueryRow(ctx, `SELECT `+programColumns+` FROM programs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Program")
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return program, nil
}

// Create inserts a new program.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, program.Name, program.Code, program.Description).
		Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		return translateWriteError(err, "program")
	}

	return nil
}

// Update applies a partial patch to a program.
func (r *ProgramRepository) Update(ctx context.Context, id int64, patch *dto.UpdateProgramRequest) (*models.Program, error) {
	var b setBuilder
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Code != nil {
		b.set("code", *patch.Code)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE programs SET %s WHERE id = $%d RETURNING `+programColumns, b.clause(), b.next())
	args := append(b.args, id)

	program, err := scanProgram(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Program")
		}
		return nil, translateWriteError(err, "program")
	}

	return program, nil
}

// Delete removes a program. Deleting a program that classes, students, fee
// structures or announcements still reference fails with a constraint error.
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "program")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Program")
	}
	return nil
}
