package dto

// CreateFacultyRequest creates a faculty member record.
type CreateFacultyRequest struct {
	UserID         *int64 `json:"userId"`
	CNIC           string `json:"cnic" binding:"required"`
	ContactNumber  string `json:"contactNumber" binding:"required"`
	Qualifications string `json:"qualifications" binding:"required"`
	Designation    string `json:"designation" binding:"required"`
}

// UpdateFacultyRequest patches a faculty member record.
type UpdateFacultyRequest struct {
	UserID         *int64  `json:"userId"`
	CNIC           *string `json:"cnic"`
	ContactNumber  *string `json:"contactNumber"`
	Qualifications *string `json:"qualifications"`
	Designation    *string `json:"designation"`
}

// CreateFacultySubjectRequest assigns a subject+section to a faculty member.
type CreateFacultySubjectRequest struct {
	FacultyID int64 `json:"facultyId" binding:"required"`
	SubjectID int64 `json:"subjectId" binding:"required"`
	SectionID int64 `json:"sectionId" binding:"required"`
}

// CreateSubjectRequest creates a subject.
type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description"`
}

// UpdateSubjectRequest patches a subject.
type UpdateSubjectRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}
