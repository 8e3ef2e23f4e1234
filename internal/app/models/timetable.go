package models

import "time"

// TimetableEntry schedules a subject for a section with a faculty member on a
// weekday. Times are free-form strings ("09:00"); overlaps are not validated.
type TimetableEntry struct {
	ID        int64     `json:"id" db:"id"`
	SectionID int64     `json:"sectionId" db:"section_id"`
	FacultyID int64     `json:"facultyId" db:"faculty_id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	Day       Weekday   `json:"day" db:"day"`
	StartTime string    `json:"startTime" db:"start_time"`
	EndTime   string    `json:"endTime" db:"end_time"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
