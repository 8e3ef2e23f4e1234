package dto

// CreateAttendanceRequest records attendance for a student on a date.
type CreateAttendanceRequest struct {
	StudentID int64   `json:"studentId" binding:"required"`
	FacultyID int64   `json:"facultyId" binding:"required"`
	SubjectID *int64  `json:"subjectId"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string  `json:"status" binding:"required,oneof=present absent leave"`
	Remarks   *string `json:"remarks"`
}

// UpdateAttendanceRequest patches an attendance record.
type UpdateAttendanceRequest struct {
	StudentID *int64  `json:"studentId"`
	FacultyID *int64  `json:"facultyId"`
	SubjectID *int64  `json:"subjectId"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" binding:"omitempty,oneof=present absent leave"`
	Remarks   *string `json:"remarks"`
}

// AttendanceFilter narrows attendance lists; filters combine with AND.
type AttendanceFilter struct {
	StudentID *int64
	FacultyID *int64
	SubjectID *int64
	Date      string
}
