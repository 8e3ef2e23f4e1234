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

// SectionRepository handles database operations for sections.
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository.
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionColumns = `id, class_id, name, created_at`

func scanSection(row pgx.Row) (*models.Section, error) {
	var s models.Section
	err := row.Scan(&s.ID, &s.ClassID, &s.Name, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves sections, optionally filtered by class.
func (r *SectionRepository) GetAll(ctx context.Context, classID *int64) ([]*models.Section, error) {
	var b filterBuilder
	if classID != nil {
		b.add("class_id = $%d", *classID)
	}

	rows, err := r.db.Query(ctx, `SELECT `+sectionColumns+` FROM sections`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

// GetByID retrieves a section by ID.
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	section, err := scanSection(r.db.QueryRow(ctx, `SELECT `+sectionColumns+` FROM sections WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Section")
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}
	return section, nil
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (class_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, section.ClassID, section.Name).Scan(&section.ID, &section.CreatedAt)
	if err != nil {
		return translateWriteError(err, "section")
	}

	return nil
}

// Update applies a partial patch to a section.
func (r *SectionRepository) Update(ctx context.Context, id int64, patch *dto.UpdateSectionRequest) (*models.Section, error) {
	var b setBuilder
	if patch.ClassID != nil {
		b.set("class_id", *patch.ClassID)
	}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE sections SET %s WHERE id = $%d RETURNING `+sectionColumns, b.clause(), b.next())
	args := append(b.args, id)

	section, err := scanSection(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Section")
		}
		return nil, translateWriteError(err, "section")
	}

	return section, nil
}

// Delete removes a section if nothing references it.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "section")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Section")
	}
	return nil
}
