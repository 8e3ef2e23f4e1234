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

// StudentRepository handles database operations for student records.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Date columns come back as text so the model keeps the ISO form the
// clients submit.
const studentColumns = `id, full_name, father_name, cnic, address, contact_number, emergency_contact,
	date_of_birth::text, gender, enrollment_no, registration_no, program_id, section_id,
	admission_date::text, status, profile_image, created_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.FullName, &s.FatherName, &s.CNIC, &s.Address, &s.ContactNumber, &s.EmergencyContact,
		&s.DateOfBirth, &s.Gender, &s.EnrollmentNo, &s.RegistrationNo, &s.ProgramID, &s.SectionID,
		&s.AdmissionDate, &s.Status, &s.ProfileImage, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves students matching the filter. Present filters combine
// with AND; Search matches full name, enrollment no or registration no as a
// case-insensitive substring.
func (r *StudentRepository) GetAll(ctx context.Context, filter *dto.StudentFilter) ([]*models.Student, error) {
	var b filterBuilder
	if filter != nil {
		if filter.ProgramID != nil {
			b.add("program_id = $%d", *filter.ProgramID)
		}
		if filter.SectionID != nil {
			b.add("section_id = $%d", *filter.SectionID)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			idx := len(b.args) + 1
			b.conds = append(b.conds,
				fmt.Sprintf("(full_name ILIKE $%d OR enrollment_no ILIKE $%d OR registration_no ILIKE $%d)", idx, idx, idx))
			b.args = append(b.args, pattern)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM students`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Student")
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// Count returns the total number of student records.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			full_name, father_name, cnic, address, contact_number, emergency_contact,
			date_of_birth, gender, enrollment_no, registration_no, program_id, section_id,
			admission_date, status, profile_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FullName, student.FatherName, student.CNIC, student.Address,
		student.ContactNumber, student.EmergencyContact, student.DateOfBirth, student.Gender,
		student.EnrollmentNo, student.RegistrationNo, student.ProgramID, student.SectionID,
		student.AdmissionDate, student.Status, student.ProfileImage,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		return translateWriteError(err, "student")
	}

	return nil
}

// Update applies a partial patch to a student record.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch *dto.UpdateStudentRequest) (*models.Student, error) {
	var b setBuilder
	if patch.FullName != nil {
		b.set("full_name", *patch.FullName)
	}
	if patch.FatherName != nil {
		b.set("father_name", *patch.FatherName)
	}
	if patch.CNIC != nil {
		b.set("cnic", *patch.CNIC)
	}
	if patch.Address != nil {
		b.set("address", *patch.Address)
	}
	if patch.ContactNumber != nil {
		b.set("contact_number", *patch.ContactNumber)
	}
	if patch.EmergencyContact != nil {
		b.set("emergency_contact", *patch.EmergencyContact)
	}
	if patch.DateOfBirth != nil {
		b.set("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Gender != nil {
		b.set("gender", *patch.Gender)
	}
	if patch.EnrollmentNo != nil {
		b.set("enrollment_no", *patch.EnrollmentNo)
	}
	if patch.RegistrationNo != nil {
		b.set("registration_no", *patch.RegistrationNo)
	}
	if patch.ProgramID != nil {
		b.set("program_id", *patch.ProgramID)
	}
	if patch.SectionID != nil {
		b.set("section_id", *patch.SectionID)
	}
	if patch.AdmissionDate != nil {
		b.set("admission_date", *patch.AdmissionDate)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.ProfileImage != nil {
		b.set("profile_image", *patch.ProfileImage)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE students SET %s WHERE id = $%d RETURNING `+studentColumns, b.clause(), b.next())
	args := append(b.args, id)

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Student")
		}
		return nil, translateWriteError(err, "student")
	}

	return student, nil
}

// Delete removes a student if no attendance, fees or results reference them.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "student")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Student")
	}
	return nil
}
