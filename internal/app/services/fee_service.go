package services

import (
	"context"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/app/repositories"
)

// FeeService defines the interface for fee structure and challan operations.
type FeeService interface {
	GetFeeStructures(ctx context.Context, filter *dto.FeeStructureFilter) ([]*models.FeeStructure, error)
	GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error)
	CreateFeeStructure(ctx context.Context, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error)

	GetAllFees(ctx context.Context, filter *dto.FeeFilter) ([]*models.Fee, error)
	GetFeeByID(ctx context.Context, id int64) (*models.Fee, error)
	CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error)
	UpdateFee(ctx context.Context, id int64, patch *dto.UpdateFeeRequest) (*models.Fee, error)
}

// feeServiceImpl implements the FeeService interface.
type feeServiceImpl struct {
	feeRepo *repositories.FeeRepository
}

// NewFeeService creates a new fee service instance.
func NewFeeService(feeRepo *repositories.FeeRepository) FeeService {
	return &feeServiceImpl{feeRepo: feeRepo}
}

func (s *feeServiceImpl) GetFeeStructures(ctx context.Context, filter *dto.FeeStructureFilter) ([]*models.FeeStructure, error) {
	return s.feeRepo.GetStructures(ctx, filter)
}

func (s *feeServiceImpl) GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	return s.feeRepo.GetStructureByID(ctx, id)
}

func (s *feeServiceImpl) CreateFeeStructure(ctx context.Context, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error) {
	structure := &models.FeeStructure{
		ProgramID:   req.ProgramID,
		ClassID:     req.ClassID,
		Amount:      req.Amount,
		Frequency:   models.FeeFrequency(req.Frequency),
		Description: req.Description,
	}
	if err := s.feeRepo.CreateStructure(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}

func (s *feeServiceImpl) GetAllFees(ctx context.Context, filter *dto.FeeFilter) ([]*models.Fee, error) {
	return s.feeRepo.GetAll(ctx, filter)
}

func (s *feeServiceImpl) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	return s.feeRepo.GetByID(ctx, id)
}

// CreateFee issues a challan. Status is taken as submitted; it is not derived
// from the amounts.
func (s *feeServiceImpl) CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	fee := &models.Fee{
		StudentID:      req.StudentID,
		FeeStructureID: req.FeeStructureID,
		ChallanID:      req.ChallanID,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		Status:         models.FeeStatus(req.Status),
		PaymentDate:    req.PaymentDate,
	}
	if req.PaidAmount != nil {
		fee.PaidAmount = *req.PaidAmount
	}
	if req.Discount != nil {
		fee.Discount = *req.Discount
	}
	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *feeServiceImpl) UpdateFee(ctx context.Context, id int64, patch *dto.UpdateFeeRequest) (*models.Fee, error) {
	return s.feeRepo.Update(ctx, id, patch)
}
