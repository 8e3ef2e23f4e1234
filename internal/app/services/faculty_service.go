package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// FacultyService defines the interface for faculty member and subject
// assignment operations.
type FacultyService interface {
	GetAllFaculty(ctx context.Context, userID *int64) ([]*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, patch *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error

	GetAssignments(ctx context.Context, facultyID, subjectID, sectionID *int64) ([]*models.FacultySubject, error)
	CreateAssignment(ctx context.Context, req *dto.CreateFacultySubjectRequest) (*models.FacultySubject, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface.
type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance.
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{facultyRepo: facultyRepo}
}

func (s *facultyServiceImpl) GetAllFaculty(ctx context.Context, userID *int64) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx, userID)
}

func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	member := &models.Faculty{
		UserID:         req.UserID,
		CNIC:           req.CNIC,
		ContactNumber:  req.ContactNumber,
		Qualifications: req.Qualifications,
		Designation:    req.Designation,
	}
	if err := s.facultyRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id int64, patch *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	return s.facultyRepo.Update(ctx, id, patch)
}

func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	return s.facultyRepo.Delete(ctx, id)
}

func (s *facultyServiceImpl) GetAssignments(ctx context.Context, facultyID, subjectID, sectionID *int64) ([]*models.FacultySubject, error) {
	return s.facultyRepo.GetAssignments(ctx, facultyID, subjectID, sectionID)
}

func (s *facultyServiceImpl) CreateAssignment(ctx context.Context, req *dto.CreateFacultySubjectRequest) (*models.FacultySubject, error) {
	assignment := &models.FacultySubject{
		FacultyID: req.FacultyID,
		SubjectID: req.SubjectID,
		SectionID: req.SectionID,
	}
	if err := s.facultyRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *facultyServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	return s.facultyRepo.DeleteAssignment(ctx, id)
}
