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

// ExamRepository handles database operations for exams and results.
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository.
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

const examColumns = `id, name, subject_id, total_marks, exam_date::text, academic_term, created_at`

func scanExam(row pgx.Row) (*models.Exam, error) {
	var e models.Exam
	err := row.Scan(&e.ID, &e.Name, &e.SubjectID, &e.TotalMarks, &e.ExamDate, &e.AcademicTerm, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAll retrieves exams, optionally filtered by subject.
func (r *ExamRepository) GetAll(ctx context.Context, subjectID *int64) ([]*models.Exam, error) {
	var b filterBuilder
	if subjectID != nil {
		b.add("subject_id = $%d", *subjectID)
	}

	rows, err := r.db.Query(ctx, `SELECT `+examColumns+` FROM exams`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}

	return exams, rows.Err()
}

// GetByID retrieves an exam by ID.
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	exam, err := scanExam(r.db.QueryRow(ctx, `SELECT `+examColumns+` FROM exams WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Exam")
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}
	return exam, nil
}

// Create schedules a new exam.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (name, subject_id, total_marks, exam_date, academic_term)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		exam.Name, exam.SubjectID, exam.TotalMarks, exam.ExamDate, exam.AcademicTerm,
	).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		return translateWriteError(err, "exam")
	}

	return nil
}

const resultColumns = `id, student_id, exam_id, marks_obtained, percentage, grade, remarks, created_at`

func scanResult(row pgx.Row) (*models.Result, error) {
	var res models.Result
	err := row.Scan(&res.ID, &res.StudentID, &res.ExamID, &res.MarksObtained, &res.Percentage, &res.Grade, &res.Remarks, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetResults retrieves results matching the filter; present filters combine
// with AND.
func (r *ExamRepository) GetResults(ctx context.Context, filter *dto.ResultFilter) ([]*models.Result, error) {
	var b filterBuilder
	if filter != nil {
		if filter.StudentID != nil {
			b.add("student_id = $%d", *filter.StudentID)
		}
		if filter.ExamID != nil {
			b.add("exam_id = $%d", *filter.ExamID)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+resultColumns+` FROM results`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// CreateResult records a student's exam outcome.
func (r *ExamRepository) CreateResult(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, exam_id, marks_obtained, percentage, grade, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID, result.ExamID, result.MarksObtained, result.Percentage, result.Grade, result.Remarks,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return translateWriteError(err, "result")
	}

	return nil
}
