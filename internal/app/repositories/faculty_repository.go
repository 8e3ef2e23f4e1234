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

// FacultyRepository handles database operations for faculty members and
// their subject assignments.
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository.
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

const facultyColumns = `id, user_id, cnic, contact_number, qualifications, designation, created_at`

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(&f.ID, &f.UserID, &f.CNIC, &f.ContactNumber, &f.Qualifications, &f.Designation, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAll retrieves faculty members, optionally filtered by linked user.
func (r *FacultyRepository) GetAll(ctx context.Context, userID *int64) ([]*models.Faculty, error) {
	var b filterBuilder
	if userID != nil {
		b.add("user_id = $%d", *userID)
	}

	rows, err := r.db.Query(ctx, `SELECT `+facultyColumns+` FROM faculty`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.Faculty
	for rows.Next() {
		member, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// GetByID retrieves a faculty member by ID.
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	member, err := scanFaculty(r.db.QueryRow(ctx, `SELECT `+facultyColumns+` FROM faculty WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Faculty")
		}
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}
	return member, nil
}

// Count returns the total number of faculty members.
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}
	return count, nil
}

// Create inserts a new faculty member.
func (r *FacultyRepository) Create(ctx context.Context, member *models.Faculty) error {
	query := `
		INSERT INTO faculty (user_id, cnic, contact_number, qualifications, designation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		member.UserID, member.CNIC, member.ContactNumber, member.Qualifications, member.Designation,
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return translateWriteError(err, "faculty member")
	}

	return nil
}

// Update applies a partial patch to a faculty member.
func (r *FacultyRepository) Update(ctx context.Context, id int64, patch *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	var b setBuilder
	if patch.UserID != nil {
		b.set("user_id", *patch.UserID)
	}
	if patch.CNIC != nil {
		b.set("cnic", *patch.CNIC)
	}
	if patch.ContactNumber != nil {
		b.set("contact_number", *patch.ContactNumber)
	}
	if patch.Qualifications != nil {
		b.set("qualifications", *patch.Qualifications)
	}
	if patch.Designation != nil {
		b.set("designation", *patch.Designation)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE faculty SET %s WHERE id = $%d RETURNING `+facultyColumns, b.clause(), b.next())
	args := append(b.args, id)

	member, err := scanFaculty(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Faculty")
		}
		return nil, translateWriteError(err, "faculty member")
	}

	return member, nil
}

// Delete removes a faculty member if no dependent rows reference them.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "faculty member")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Faculty")
	}
	return nil
}

const facultySubjectColumns = `id, faculty_id, subject_id, section_id, created_at`

func scanFacultySubject(row pgx.Row) (*models.FacultySubject, error) {
	var fs models.FacultySubject
	err := row.Scan(&fs.ID, &fs.FacultyID, &fs.SubjectID, &fs.SectionID, &fs.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

// GetAssignments retrieves subject assignments; present filters combine with AND.
func (r *FacultyRepository) GetAssignments(ctx context.Context, facultyID, subjectID, sectionID *int64) ([]*models.FacultySubject, error) {
	var b filterBuilder
	if facultyID != nil {
		b.add("faculty_id = $%d", *facultyID)
	}
	if subjectID != nil {
		b.add("subject_id = $%d", *subjectID)
	}
	if sectionID != nil {
		b.add("section_id = $%d", *sectionID)
	}

	rows, err := r.db.Query(ctx, `SELECT `+facultySubjectColumns+` FROM faculty_subjects`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.FacultySubject
	for rows.Next() {
		assignment, err := scanFacultySubject(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// CreateAssignment records that a faculty member teaches a subject to a section.
func (r *FacultyRepository) CreateAssignment(ctx context.Context, assignment *models.FacultySubject) error {
	query := `
		INSERT INTO faculty_subjects (faculty_id, subject_id, section_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		assignment.FacultyID, assignment.SubjectID, assignment.SectionID,
	).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return translateWriteError(err, "faculty subject assignment")
	}

	return nil
}

// DeleteAssignment removes a subject assignment.
func (r *FacultyRepository) DeleteAssignment(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_subjects WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "faculty subject assignment")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Faculty subject assignment")
	}
	return nil
}
