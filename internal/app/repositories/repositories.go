package repositories

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asadk/maktab/internal/pkg/apperrors"
	"github.com/asadk/maktab/internal/pkg/dberrors"
)

// Repositories holds all the repository instances.
type Repositories struct {
	UserRepository         *UserRepository
	ProgramRepository      *ProgramRepository
	ClassRepository        *ClassRepository
	SectionRepository      *SectionRepository
	FacultyRepository      *FacultyRepository
	SubjectRepository      *SubjectRepository
	StudentRepository      *StudentRepository
	AttendanceRepository   *AttendanceRepository
	FeeRepository          *FeeRepository
	ExamRepository         *ExamRepository
	TimetableRepository    *TimetableRepository
	AnnouncementRepository *AnnouncementRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ProgramRepository:      NewProgramRepository(db),
		ClassRepository:        NewClassRepository(db),
		SectionRepository:      NewSectionRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		StudentRepository:      NewStudentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		FeeRepository:          NewFeeRepository(db),
		ExamRepository:         NewExamRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		TokenRepository:        NewTokenRepository(db),
	}
}

// filterBuilder collects WHERE predicates for a list query. Predicates are
// folded with AND; an empty builder imposes no constraint.
type filterBuilder struct {
	conds []string
	args  []any
}

// add appends one predicate. expr must contain a single %d placeholder for
// the positional parameter index.
func (b *filterBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// where renders the WHERE clause, or "" when no predicate is active.
func (b *filterBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// setBuilder collects SET fragments for a partial update. Only supplied
// fields are written; an empty builder means the patch had no fields.
type setBuilder struct {
	sets []string
	args []any
}

// set appends one column assignment.
func (b *setBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// empty reports whether the patch carried no fields.
func (b *setBuilder) empty() bool {
	return len(b.sets) == 0
}

// clause renders the SET clause body ("a = $1, b = $2").
func (b *setBuilder) clause() string {
	return strings.Join(b.sets, ", ")
}

// next returns the next positional parameter index.
func (b *setBuilder) next() int {
	return len(b.args) + 1
}

// uniqueMessages maps database constraint names to client-facing conflict
// messages. Constraints not listed fall back to a generic message.
var uniqueMessages = map[string]string{
	"users_username_key":           "username already exists",
	"programs_code_key":            "program code already exists",
	"subjects_code_key":            "subject code already exists",
	"students_enrollment_no_key":   "enrollment number already exists",
	"students_registration_no_key": "registration number already exists",
	"fees_challan_id_key":          "challan ID already exists",
	"faculty_user_id_key":          "faculty record for this user already exists",
}

// translateWriteError converts storage constraint failures on insert/update
// into API errors. Other errors pass through untouched.
func translateWriteError(err error, entity string) error {
	if dberrors.IsUniqueViolation(err) {
		if msg, ok := uniqueMessages[dberrors.ConstraintName(err)]; ok {
			return apperrors.Conflict(msg)
		}
		return apperrors.Conflict(entity + " already exists")
	}
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.InvalidReference("referenced record does not exist")
	}
	return err
}

// translateDeleteError converts restrict-on-delete foreign key failures.
func translateDeleteError(err error, entity string) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.HasDependents(entity + " has dependent records and cannot be deleted")
	}
	return err
}
