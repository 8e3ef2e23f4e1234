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

// AttendanceRepository handles database operations for attendance records.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, student_id, faculty_id, subject_id, date::text, status, remarks, created_at`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var a models.Attendance
	err := row.Scan(&a.ID, &a.StudentID, &a.FacultyID, &a.SubjectID, &a.Date, &a.Status, &a.Remarks, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll retrieves attendance records matching the filter; present filters
// combine with AND.
func (r *AttendanceRepository) GetAll(ctx context.Context, filter *dto.AttendanceFilter) ([]*models.Attendance, error) {
	var b filterBuilder
	if filter != nil {
		if filter.StudentID != nil {
			b.add("student_id = $%d", *filter.StudentID)
		}
		if filter.FacultyID != nil {
			b.add("faculty_id = $%d", *filter.FacultyID)
		}
		if filter.SubjectID != nil {
			b.add("subject_id = $%d", *filter.SubjectID)
		}
		if filter.Date != "" {
			b.add("date = $%d", filter.Date)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetByID retrieves an attendance record by ID.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	record, err := scanAttendance(r.db.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Attendance")
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}
	return record, nil
}

// Create inserts an attendance record. Duplicate student/date pairs are not
// rejected; re-marking a day is done through Update.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, faculty_id, subject_id, date, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.FacultyID, record.SubjectID, record.Date, record.Status, record.Remarks,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return translateWriteError(err, "attendance record")
	}

	return nil
}

// Update applies a partial patch to an attendance record.
func (r *AttendanceRepository) Update(ctx context.Context, id int64, patch *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	var b setBuilder
	if patch.StudentID != nil {
		b.set("student_id", *patch.StudentID)
	}
	if patch.FacultyID != nil {
		b.set("faculty_id", *patch.FacultyID)
	}
	if patch.SubjectID != nil {
		b.set("subject_id", *patch.SubjectID)
	}
	if patch.Date != nil {
		b.set("date", *patch.Date)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.Remarks != nil {
		b.set("remarks", *patch.Remarks)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE attendance SET %s WHERE id = $%d RETURNING `+attendanceColumns, b.clause(), b.next())
	args := append(b.args, id)

	record, err := scanAttendance(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Attendance")
		}
		return nil, translateWriteError(err, "attendance record")
	}

	return record, nil
}
