package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// ExamService defines the interface for exam and result operations.
type ExamService interface {
	GetAllExams(ctx context.Context, subjectID *int64) ([]*models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error)

	GetResults(ctx context.Context, filter *dto.ResultFilter) ([]*models.Result, error)
	CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error)
}

// examServiceImpl implements the ExamService interface.
type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance.
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

func (s *examServiceImpl) GetAllExams(ctx context.Context, subjectID *int64) ([]*models.Exam, error) {
	return s.examRepo.GetAll(ctx, subjectID)
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

func (s *examServiceImpl) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	exam := &models.Exam{
		Name:         req.Name,
		SubjectID:    req.SubjectID,
		TotalMarks:   req.TotalMarks,
		ExamDate:     req.ExamDate,
		AcademicTerm: req.AcademicTerm,
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *examServiceImpl) GetResults(ctx context.Context, filter *dto.ResultFilter) ([]*models.Result, error) {
	return s.examRepo.GetResults(ctx, filter)
}

// CreateResult records an exam outcome. Percentage and grade come from the
// caller, matching the marks-entry workflow.
func (s *examServiceImpl) CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error) {
	result := &models.Result{
		StudentID:     req.StudentID,
		ExamID:        req.ExamID,
		MarksObtained: req.MarksObtained,
		Percentage:    req.Percentage,
		Grade:         req.Grade,
		Remarks:       req.Remarks,
	}
	if err := s.examRepo.CreateResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}
