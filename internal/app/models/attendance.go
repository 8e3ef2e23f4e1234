package models

import "time"

// Attendance is one student's recorded presence for one date, authored by a
// faculty member, optionally scoped to a subject.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	FacultyID int64            `json:"facultyId" db:"faculty_id"`
	SubjectID *int64           `json:"subjectId,omitempty" db:"subject_id"`
	Date      string           `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
	Remarks   *string          `json:"remarks,omitempty" db:"remarks"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
