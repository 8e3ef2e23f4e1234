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

// TimetableRepository handles database operations for timetable entries.
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository.
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

const timetableColumns = `id, section_id, faculty_id, subject_id, day, start_time, end_time, created_at`

func scanTimetableEntry(row pgx.Row) (*models.TimetableEntry, error) {
	var t models.TimetableEntry
	err := row.Scan(&t.ID, &t.SectionID, &t.FacultyID, &t.SubjectID, &t.Day, &t.StartTime, &t.EndTime, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll retrieves timetable entries matching the filter; present filters
// combine with AND.
func (r *TimetableRepository) GetAll(ctx context.Context, filter *dto.TimetableFilter) ([]*models.TimetableEntry, error) {
	var b filterBuilder
	if filter != nil {
		if filter.SectionID != nil {
			b.add("section_id = $%d", *filter.SectionID)
		}
		if filter.FacultyID != nil {
			b.add("faculty_id = $%d", *filter.FacultyID)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+timetableColumns+` FROM timetable`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		entry, err := scanTimetableEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetByID retrieves a timetable entry by ID.
func (r *TimetableRepository) GetByID(ctx context.Context, id int64) (*models.TimetableEntry, error) {
	entry, err := scanTimetableEntry(r.db.QueryRow(ctx, `SELECT `+timetableColumns+` FROM timetable WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Timetable entry")
		}
		return nil, fmt.Errorf("error retrieving timetable entry: %w", err)
	}
	return entry, nil
}

// Create inserts a timetable entry. Overlapping slots are accepted; clash
// detection is left to the scheduling staff.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	query := `
		INSERT INTO timetable (section_id, faculty_id, subject_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.SectionID, entry.FacultyID, entry.SubjectID, entry.Day, entry.StartTime, entry.EndTime,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return translateWriteError(err, "timetable entry")
	}

	return nil
}

// Update applies a partial patch to a timetable entry.
func (r *TimetableRepository) Update(ctx context.Context, id int64, patch *dto.UpdateTimetableRequest) (*models.TimetableEntry, error) {
	var b setBuilder
	if patch.SectionID != nil {
		b.set("section_id", *patch.SectionID)
	}
	if patch.FacultyID != nil {
		b.set("faculty_id", *patch.FacultyID)
	}
	if patch.SubjectID != nil {
		b.set("subject_id", *patch.SubjectID)
	}
	if patch.Day != nil {
		b.set("day", *patch.Day)
	}
	if patch.StartTime != nil {
		b.set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		b.set("end_time", *patch.EndTime)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE timetable SET %s WHERE id = $%d RETURNING `+timetableColumns, b.clause(), b.next())
	args := append(b.args, id)

	entry, err := scanTimetableEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Timetable entry")
		}
		return nil, translateWriteError(err, "timetable entry")
	}

	return entry, nil
}

// Delete removes a timetable entry.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM timetable WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "timetable entry")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Timetable entry")
	}
	return nil
}
