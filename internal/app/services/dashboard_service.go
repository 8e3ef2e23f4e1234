package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// DashboardService aggregates headline numbers for the landing page.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

// dashboardServiceImpl implements the DashboardService interface.
type dashboardServiceImpl struct {
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	feeRepo     *repositories.FeeRepository
}

// NewDashboardService creates a new dashboard service instance.
func NewDashboardService(studentRepo *repositories.StudentRepository, facultyRepo *repositories.FacultyRepository, feeRepo *repositories.FeeRepository) DashboardService {
	return &dashboardServiceImpl{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		feeRepo:     feeRepo,
	}
}

// GetStats collects totals: student and faculty head counts, the sum
// collected over paid challans, and the number of unpaid challans.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalFaculty, err := s.facultyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	feeCollection, err := s.feeRepo.TotalCollected(ctx)
	if err != nil {
		return nil, err
	}

	feeDefaulters, err := s.feeRepo.CountByStatus(ctx, models.FeeUnpaid)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalStudents: totalStudents,
		TotalFaculty:  totalFaculty,
		FeeCollection: feeCollection,
		FeeDefaulters: feeDefaulters,
	}, nil
}
