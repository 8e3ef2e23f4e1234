package models

// UserRole defines the role attached to a user account.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleFaculty    UserRole = "faculty"
	RoleAccountant UserRole = "accountant"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleAccountant:
		return true
	}
	return false
}

// StudentStatus tracks a student's lifecycle state.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentPending   StudentStatus = "pending"
	StudentGraduated StudentStatus = "graduated"
)

// Valid reports whether the status is a known student status.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentPending, StudentGraduated:
		return true
	}
	return false
}

// AttendanceStatus is the outcome recorded for one student on one date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid reports whether the status is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

// FeeStatus tracks the payment state of a fee challan.
type FeeStatus string

const (
	FeePaid          FeeStatus = "paid"
	FeeUnpaid        FeeStatus = "unpaid"
	FeePartiallyPaid FeeStatus = "partially paid"
	FeeOverdue       FeeStatus = "overdue"
)

// Valid reports whether the status is a known fee status.
func (s FeeStatus) Valid() bool {
	switch s {
	case FeePaid, FeeUnpaid, FeePartiallyPaid, FeeOverdue:
		return true
	}
	return false
}

// FeeFrequency is the billing cadence of a fee structure.
type FeeFrequency string

const (
	FrequencyMonthly   FeeFrequency = "monthly"
	FrequencyQuarterly FeeFrequency = "quarterly"
	FrequencyBiAnnual  FeeFrequency = "bi-annual"
	FrequencyAnnual    FeeFrequency = "annual"
)

// Valid reports whether the frequency is a known billing cadence.
func (f FeeFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyBiAnnual, FrequencyAnnual:
		return true
	}
	return false
}

// Weekday names a timetable day.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Valid reports whether the day is a known weekday name.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}
