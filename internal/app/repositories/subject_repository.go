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

// SubjectRepository handles database operations for subjects.
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

const subjectColumns = `id, name, code, description, created_at`

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var s models.Subject
	err := row.Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves all subjects.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `SELECT `+subjectColumns+` FROM subjects`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	return subjects, rows.Err()
}

// GetByID retrieves a subject by ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := scanSubject(r.db.QueryRow(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Subject")
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.Code, subject.Description).
		Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		return translateWriteError(err, "subject")
	}

	return nil
}

// Update applies a partial patch to a subject.
func (r *SubjectRepository) Update(ctx context.Context, id int64, patch *dto.UpdateSubjectRequest) (*models.Subject, error) {
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

	query := fmt.Sprintf(`UPDATE subjects SET %s WHERE id = $%d RETURNING `+subjectColumns, b.clause(), b.next())
	args := append(b.args, id)

	subject, err := scanSubject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Subject")
		}
		return nil, translateWriteError(err, "subject")
	}

	return subject, nil
}

// Delete removes a subject if nothing references it.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "subject")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Subject")
	}
	return nil
}
