package models

import "testing"

func TestUserRoleValid(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleFaculty, RoleAccountant} {
		if !role.Valid() {
			t.Fatalf("role %q should be valid", role)
		}
	}
	if UserRole("student").Valid() {
		t.Fatalf("unknown role should be invalid")
	}
}

func TestStudentStatusValid(t *testing.T) {
	for _, s := range []StudentStatus{StudentActive, StudentInactive, StudentPending, StudentGraduated} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if StudentStatus("expelled").Valid() {
		t.Fatalf("unknown status should be invalid")
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLeave} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if AttendanceStatus("late").Valid() {
		t.Fatalf("unknown status should be invalid")
	}
}

func TestFeeStatusValid(t *testing.T) {
	for _, s := range []FeeStatus{FeePaid, FeeUnpaid, FeePartiallyPaid, FeeOverdue} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	// The stored value uses a space, not a hyphen.
	if FeeStatus("partially-paid").Valid() {
		t.Fatalf("hyphenated spelling should be invalid")
	}
}

func TestFeeFrequencyValid(t *testing.T) {
	for _, f := range []FeeFrequency{FrequencyMonthly, FrequencyQuarterly, FrequencyBiAnnual, FrequencyAnnual} {
		if !f.Valid() {
			t.Fatalf("frequency %q should be valid", f)
		}
	}
	if FeeFrequency("weekly").Valid() {
		t.Fatalf("unknown frequency should be invalid")
	}
}

func TestWeekdayValid(t *testing.T) {
	for _, d := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		if !d.Valid() {
			t.Fatalf("day %q should be valid", d)
		}
	}
	if Weekday("Monday").Valid() {
		t.Fatalf("weekdays are stored lowercase")
	}
}
