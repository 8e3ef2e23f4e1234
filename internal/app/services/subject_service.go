package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// SubjectService defines the interface for subject operations.
type SubjectService interface {
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, patch *dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements the SubjectService interface.
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance.
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{subjectRepo: subjectRepo}
}

func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, patch *dto.UpdateSubjectRequest) (*models.Subject, error) {
	return s.subjectRepo.Update(ctx, id, patch)
}

func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}
