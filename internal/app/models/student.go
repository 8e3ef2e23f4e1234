package models

import "time"

// Student defines an enrolled student based on the 'students' table.
// Date fields are ISO dates (YYYY-MM-DD) as supplied by form controls.
type Student struct {
	ID               int64         `json:"id" db:"id"`
	FullName         string        `json:"fullName" db:"full_name"`
	FatherName       string        `json:"fatherName" db:"father_name"`
	CNIC             string        `json:"cnic" db:"cnic"`
	Address          string        `json:"address" db:"address"`
	ContactNumber    string        `json:"contactNumber" db:"contact_number"`
	EmergencyContact string        `json:"emergencyContact" db:"emergency_contact"`
	DateOfBirth      string        `json:"dateOfBirth" db:"date_of_birth"`
	Gender           string        `json:"gender" db:"gender"`
	EnrollmentNo     string        `json:"enrollmentNo" db:"enrollment_no"`
	RegistrationNo   string        `json:"registrationNo" db:"registration_no"`
	ProgramID        int64         `json:"programId" db:"program_id"`
	SectionID        int64         `json:"sectionId" db:"section_id"`
	AdmissionDate    string        `json:"admissionDate" db:"admission_date"`
	Status           StudentStatus `json:"status" db:"status"`
	ProfileImage     *string       `json:"profileImage,omitempty" db:"profile_image"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
}
