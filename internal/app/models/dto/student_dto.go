package dto

// CreateStudentRequest enrolls a student. Dates are ISO dates from form
// controls (YYYY-MM-DD).
type CreateStudentRequest struct {
	FullName         string  `json:"fullName" binding:"required"`
	FatherName       string  `json:"fatherName" binding:"required"`
	CNIC             string  `json:"cnic" binding:"required"`
	Address          string  `json:"address" binding:"required"`
	ContactNumber    string  `json:"contactNumber" binding:"required"`
	EmergencyContact string  `json:"emergencyContact" binding:"required"`
	DateOfBirth      string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Gender           string  `json:"gender" binding:"required"`
	EnrollmentNo     string  `json:"enrollmentNo" binding:"required"`
	RegistrationNo   string  `json:"registrationNo" binding:"required"`
	ProgramID        int64   `json:"programId" binding:"required"`
	SectionID        int64   `json:"sectionId" binding:"required"`
	AdmissionDate    string  `json:"admissionDate" binding:"required,datetime=2006-01-02"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive pending graduated"`
	ProfileImage     *string `json:"profileImage"`
}

// UpdateStudentRequest patches a student; absent fields are left unchanged.
type UpdateStudentRequest struct {
	FullName         *string `json:"fullName"`
	FatherName       *string `json:"fatherName"`
	CNIC             *string `json:"cnic"`
	Address          *string `json:"address"`
	ContactNumber    *string `json:"contactNumber"`
	EmergencyContact *string `json:"emergencyContact"`
	DateOfBirth      *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Gender           *string `json:"gender"`
	EnrollmentNo     *string `json:"enrollmentNo"`
	RegistrationNo   *string `json:"registrationNo"`
	ProgramID        *int64  `json:"programId"`
	SectionID        *int64  `json:"sectionId"`
	AdmissionDate    *string `json:"admissionDate" binding:"omitempty,datetime=2006-01-02"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive pending graduated"`
	ProfileImage     *string `json:"profileImage"`
}

// StudentFilter narrows student lists. All present filters combine with AND;
// Search matches name, enrollment no or registration no as a
// case-insensitive substring.
type StudentFilter struct {
	ProgramID *int64
	SectionID *int64
	Search    string
}
