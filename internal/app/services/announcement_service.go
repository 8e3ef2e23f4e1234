package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// AnnouncementService defines the interface for announcement operations.
type AnnouncementService interface {
	GetAllAnnouncements(ctx context.Context, filter *dto.AnnouncementFilter) ([]*models.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error)
	CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int64, patch *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// announcementServiceImpl implements the AnnouncementService interface.
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service instance.
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{announcementRepo: announcementRepo}
}

func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context, filter *dto.AnnouncementFilter) ([]*models.Announcement, error) {
	return s.announcementRepo.GetAll(ctx, filter)
}

func (s *announcementServiceImpl) GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		UserID:    req.UserID,
		ProgramID: req.ProgramID,
	}
	if req.TargetRole != nil {
		role := models.UserRole(*req.TargetRole)
		announcement.TargetRole = &role
	}
	if req.IsPinned != nil {
		announcement.IsPinned = *req.IsPinned
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, id int64, patch *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	return s.announcementRepo.Update(ctx, id, patch)
}

func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
