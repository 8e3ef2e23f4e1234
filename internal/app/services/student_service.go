package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// StudentService defines the interface for student record operations.
type StudentService interface {
	GetAllStudents(ctx context.Context, filter *dto.StudentFilter) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, patch *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface.
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context, filter *dto.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx, filter)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	status := models.StudentActive
	if req.Status != nil {
		status = models.StudentStatus(*req.Status)
	}

	student := &models.Student{
		FullName:         req.FullName,
		FatherName:       req.FatherName,
		CNIC:             req.CNIC,
		Address:          req.Address,
		ContactNumber:    req.ContactNumber,
		EmergencyContact: req.EmergencyContact,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		EnrollmentNo:     req.EnrollmentNo,
		RegistrationNo:   req.RegistrationNo,
		ProgramID:        req.ProgramID,
		SectionID:        req.SectionID,
		AdmissionDate:    req.AdmissionDate,
		Status:           status,
		ProfileImage:     req.ProfileImage,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, patch *dto.UpdateStudentRequest) (*models.Student, error) {
	return s.studentRepo.Update(ctx, id, patch)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
