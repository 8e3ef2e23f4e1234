package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// ProgramService defines the interface for program, class and section
// operations. Classes are year cohorts within a program; sections subdivide
// a class.
type ProgramService interface {
	GetAllPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*models.Program, error)
	UpdateProgram(ctx context.Context, id int64, patch *dto.UpdateProgramRequest) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int64) error

	GetAllClasses(ctx context.Context, programID *int64) ([]*models.Class, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error)
	UpdateClass(ctx context.Context, id int64, patch *dto.UpdateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, id int64) error

	GetAllSections(ctx context.Context, classID *int64) ([]*models.Section, error)
	GetSectionByID(ctx context.Context, id int64) (*models.Section, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*models.Section, error)
	UpdateSection(ctx context.Context, id int64, patch *dto.UpdateSectionRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, id int64) error
}

// programServiceImpl implements the ProgramService interface.
type programServiceImpl struct {
	programRepo *repositories.ProgramRepository
	classRepo   *repositories.ClassRepository
	sectionRepo *repositories.SectionRepository
}

// NewProgramService creates a new program service instance.
func NewProgramService(programRepo *repositories.ProgramRepository, classRepo *repositories.ClassRepository, sectionRepo *repositories.SectionRepository) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		classRepo:   classRepo,
		sectionRepo: sectionRepo,
	}
}

func (s *programServiceImpl) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

func (s *programServiceImpl) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*models.Program, error) {
	program := &models.Program{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, id int64, patch *dto.UpdateProgramRequest) (*models.Program, error) {
	return s.programRepo.Update(ctx, id, patch)
}

func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	return s.programRepo.Delete(ctx, id)
}

func (s *programServiceImpl) GetAllClasses(ctx context.Context, programID *int64) ([]*models.Class, error) {
	return s.classRepo.GetAll(ctx, programID)
}

func (s *programServiceImpl) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *programServiceImpl) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		ProgramID: req.ProgramID,
		Year:      req.Year,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *programServiceImpl) UpdateClass(ctx context.Context, id int64, patch *dto.UpdateClassRequest) (*models.Class, error) {
	return s.classRepo.Update(ctx, id, patch)
}

func (s *programServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}

func (s *programServiceImpl) GetAllSections(ctx context.Context, classID *int64) ([]*models.Section, error) {
	return s.sectionRepo.GetAll(ctx, classID)
}

func (s *programServiceImpl) GetSectionByID(ctx context.Context, id int64) (*models.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

func (s *programServiceImpl) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*models.Section, error) {
	section := &models.Section{
		ClassID: req.ClassID,
		Name:    req.Name,
	}
	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *programServiceImpl) UpdateSection(ctx context.Context, id int64, patch *dto.UpdateSectionRequest) (*models.Section, error) {
	return s.sectionRepo.Update(ctx, id, patch)
}

func (s *programServiceImpl) DeleteSection(ctx context.Context, id int64) error {
	return s.sectionRepo.Delete(ctx, id)
}
