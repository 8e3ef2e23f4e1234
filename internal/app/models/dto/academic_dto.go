package dto

// CreateProgramRequest creates an academic program.
type CreateProgramRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description"`
}

// UpdateProgramRequest patches a program; absent fields are left unchanged.
type UpdateProgramRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// CreateClassRequest creates a year cohort within a program.
type CreateClassRequest struct {
	ProgramID int64 `json:"programId" binding:"required"`
	Year      int   `json:"year" binding:"required,min=1"`
}

// UpdateClassRequest patches a class.
type UpdateClassRequest struct {
	ProgramID *int64 `json:"programId"`
	Year      *int   `json:"year" binding:"omitempty,min=1"`
}

// CreateSectionRequest creates a section within a class.
type CreateSectionRequest struct {
	ClassID int64  `json:"classId" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// UpdateSectionRequest patches a section.
type UpdateSectionRequest struct {
	ClassID *int64  `json:"classId"`
	Name    *string `json:"name"`
}
