package dto

// CreateTimetableRequest schedules a subject slot for a section.
type CreateTimetableRequest struct {
	SectionID int64  `json:"sectionId" binding:"required"`
	FacultyID int64  `json:"facultyId" binding:"required"`
	SubjectID int64  `json:"subjectId" binding:"required"`
	Day       string `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// UpdateTimetableRequest patches a timetable entry.
type UpdateTimetableRequest struct {
	SectionID *int64  `json:"sectionId"`
	FacultyID *int64  `json:"facultyId"`
	SubjectID *int64  `json:"subjectId"`
	Day       *string `json:"day" binding:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// TimetableFilter narrows timetable lists.
type TimetableFilter struct {
	SectionID *int64
	FacultyID *int64
}
