package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// AttendanceService defines the interface for attendance operations.
// Attendance records are corrected through updates; there is no delete.
type AttendanceService interface {
	GetAllAttendance(ctx context.Context, filter *dto.AttendanceFilter) ([]*models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, patch *dto.UpdateAttendanceRequest) (*models.Attendance, error)
}

// attendanceServiceImpl implements the AttendanceService interface.
type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance.
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func (s *attendanceServiceImpl) GetAllAttendance(ctx context.Context, filter *dto.AttendanceFilter) ([]*models.Attendance, error) {
	return s.attendanceRepo.GetAll(ctx, filter)
}

func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error) {
	record := &models.Attendance{
		StudentID: req.StudentID,
		FacultyID: req.FacultyID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Status:    models.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, patch *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	return s.attendanceRepo.Update(ctx, id, patch)
}
