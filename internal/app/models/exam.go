package models

import "time"

// Exam is a scheduled examination for a subject within an academic term.
type Exam struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SubjectID    int64     `json:"subjectId" db:"subject_id"`
	TotalMarks   int       `json:"totalMarks" db:"total_marks"`
	ExamDate     string    `json:"examDate" db:"exam_date"`
	AcademicTerm string    `json:"academicTerm" db:"academic_term"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Result records a student's outcome in an exam. Percentage and grade are
// caller-supplied, matching the challan-style data entry workflow.
type Result struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	ExamID        int64     `json:"examId" db:"exam_id"`
	MarksObtained float64   `json:"marksObtained" db:"marks_obtained"`
	Percentage    float64   `json:"percentage" db:"percentage"`
	Grade         string    `json:"grade" db:"grade"`
	Remarks       *string   `json:"remarks,omitempty" db:"remarks"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
