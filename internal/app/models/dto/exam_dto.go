package dto

// CreateExamRequest schedules an exam for a subject.
type CreateExamRequest struct {
	Name         string `json:"name" binding:"required"`
	SubjectID    int64  `json:"subjectId" binding:"required"`
	TotalMarks   int    `json:"totalMarks" binding:"required,gt=0"`
	ExamDate     string `json:"examDate" binding:"required,datetime=2006-01-02"`
	AcademicTerm string `json:"academicTerm" binding:"required"`
}

// CreateResultRequest records a student's exam result. Percentage and grade
// are caller-supplied.
type CreateResultRequest struct {
	StudentID     int64   `json:"studentId" binding:"required"`
	ExamID        int64   `json:"examId" binding:"required"`
	MarksObtained float64 `json:"marksObtained" binding:"gte=0"`
	Percentage    float64 `json:"percentage" binding:"gte=0,lte=100"`
	Grade         string  `json:"grade" binding:"required"`
	Remarks       *string `json:"remarks"`
}

// ResultFilter narrows result lists.
type ResultFilter struct {
	StudentID *int64
	ExamID    *int64
}
