package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// TimetableService defines the interface for timetable operations.
type TimetableService interface {
	GetAllEntries(ctx context.Context, filter *dto.TimetableFilter) ([]*models.TimetableEntry, error)
	GetEntryByID(ctx context.Context, id int64) (*models.TimetableEntry, error)
	CreateEntry(ctx context.Context, req *dto.CreateTimetableRequest) (*models.TimetableEntry, error)
	UpdateEntry(ctx context.Context, id int64, patch *dto.UpdateTimetableRequest) (*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// timetableServiceImpl implements the TimetableService interface.
type timetableServiceImpl struct {
	timetableRepo *repositories.TimetableRepository
}

// NewTimetableService creates a new timetable service instance.
func NewTimetableService(timetableRepo *repositories.TimetableRepository) TimetableService {
	return &timetableServiceImpl{timetableRepo: timetableRepo}
}

func (s *timetableServiceImpl) GetAllEntries(ctx context.Context, filter *dto.TimetableFilter) ([]*models.TimetableEntry, error) {
	return s.timetableRepo.GetAll(ctx, filter)
}

func (s *timetableServiceImpl) GetEntryByID(ctx context.Context, id int64) (*models.TimetableEntry, error) {
	return s.timetableRepo.GetByID(ctx, id)
}

func (s *timetableServiceImpl) CreateEntry(ctx context.Context, req *dto.CreateTimetableRequest) (*models.TimetableEntry, error) {
	entry := &models.TimetableEntry{
		SectionID: req.SectionID,
		FacultyID: req.FacultyID,
		SubjectID: req.SubjectID,
		Day:       models.Weekday(req.Day),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.timetableRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *timetableServiceImpl) UpdateEntry(ctx context.Context, id int64, patch *dto.UpdateTimetableRequest) (*models.TimetableEntry, error) {
	return s.timetableRepo.Update(ctx, id, patch)
}

func (s *timetableServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	return s.timetableRepo.Delete(ctx, id)
}
