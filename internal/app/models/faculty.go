package models

import "time"

// Faculty is a teaching staff member, optionally linked 1:1 to a user account.
type Faculty struct {
	ID             int64     `json:"id" db:"id"`
	UserID         *int64    `json:"userId,omitempty" db:"user_id"`
	CNIC           string    `json:"cnic" db:"cnic"`
	ContactNumber  string    `json:"contactNumber" db:"contact_number"`
	Qualifications string    `json:"qualifications" db:"qualifications"`
	Designation    string    `json:"designation" db:"designation"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// FacultySubject records that a faculty member teaches a subject to a section.
type FacultySubject struct {
	ID        int64     `json:"id" db:"id"`
	FacultyID int64     `json:"facultyId" db:"faculty_id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	SectionID int64     `json:"sectionId" db:"section_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
