package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fee structures and challans.
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository.
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

const feeStructureColumns = `id, program_id, class_id, amount, frequency, description, created_at`

func scanFeeStructure(row pgx.Row) (*models.FeeStructure, error) {
	var fs models.FeeStructure
	err := row.Scan(&fs.ID, &fs.ProgramID, &fs.ClassID, &fs.Amount, &fs.Frequency, &fs.Description, &fs.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

// GetStructures retrieves fee structures matching the filter.
func (r *FeeRepository) GetStructures(ctx context.Context, filter *dto.FeeStructureFilter) ([]*models.FeeStructure, error) {
	var b filterBuilder
	if filter != nil {
		if filter.ProgramID != nil {
			b.add("program_id = $%d", *filter.ProgramID)
		}
		if filter.ClassID != nil {
			b.add("class_id = $%d", *filter.ClassID)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+feeStructureColumns+` FROM fee_structures`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		structure, err := scanFeeStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, structure)
	}

	return structures, rows.Err()
}

// GetStructureByID retrieves a fee structure by ID.
func (r *FeeRepository) GetStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	structure, err := scanFeeStructure(r.db.QueryRow(ctx,
		`SELECT `+feeStructureColumns+` FROM fee_structures WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Fee structure")
		}
		return nil, fmt.Errorf("error retrieving fee structure: %w", err)
	}
	return structure, nil
}

// CreateStructure inserts a new fee structure.
func (r *FeeRepository) CreateStructure(ctx context.Context, structure *models.FeeStructure) error {
	query := `
		INSERT INTO fee_structures (program_id, class_id, amount, frequency, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		structure.ProgramID, structure.ClassID, structure.Amount, structure.Frequency, structure.Description,
	).Scan(&structure.ID, &structure.CreatedAt)
	if err != nil {
		return translateWriteError(err, "fee structure")
	}

	return nil
}

const feeColumns = `id, student_id, fee_structure_id, challan_id, amount, due_date::text,
	paid_amount, status, payment_date::text, discount, created_at`

func scanFee(row pgx.Row) (*models.Fee, error) {
	var f models.Fee
	err := row.Scan(
		&f.ID, &f.StudentID, &f.FeeStructureID, &f.ChallanID, &f.Amount, &f.DueDate,
		&f.PaidAmount, &f.Status, &f.PaymentDate, &f.Discount, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAll retrieves challans matching the filter; present filters combine
// with AND.
func (r *FeeRepository) GetAll(ctx context.Context, filter *dto.FeeFilter) ([]*models.Fee, error) {
	var b filterBuilder
	if filter != nil {
		if filter.StudentID != nil {
			b.add("student_id = $%d", *filter.StudentID)
		}
		if filter.Status != "" {
			b.add("status = $%d", filter.Status)
		}
	}

	rows, err := r.db.Query(ctx, `SELECT `+feeColumns+` FROM fees`+b.where(), b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	return fees, rows.Err()
}

// GetByID retrieves a challan by ID.
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	fee, err := scanFee(r.db.QueryRow(ctx, `SELECT `+feeColumns+` FROM fees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Fee")
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}
	return fee, nil
}

// Create issues a new challan.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, fee_structure_id, challan_id, amount, due_date,
			paid_amount, status, payment_date, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID, fee.FeeStructureID, fee.ChallanID, fee.Amount, fee.DueDate,
		fee.PaidAmount, fee.Status, fee.PaymentDate, fee.Discount,
	).Scan(&fee.ID, &fee.CreatedAt)
	if err != nil {
		return translateWriteError(err, "fee")
	}

	return nil
}

// Update applies a partial patch to a challan.
func (r *FeeRepository) Update(ctx context.Context, id int64, patch *dto.UpdateFeeRequest) (*models.Fee, error) {
	var b setBuilder
	if patch.StudentID != nil {
		b.set("student_id", *patch.StudentID)
	}
	if patch.FeeStructureID != nil {
		b.set("fee_structure_id", *patch.FeeStructureID)
	}
	if patch.ChallanID != nil {
		b.set("challan_id", *patch.ChallanID)
	}
	if patch.Amount != nil {
		b.set("amount", *patch.Amount)
	}
	if patch.DueDate != nil {
		b.set("due_date", *patch.DueDate)
	}
	if patch.PaidAmount != nil {
		b.set("paid_amount", *patch.PaidAmount)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.PaymentDate != nil {
		b.set("payment_date", *patch.PaymentDate)
	}
	if patch.Discount != nil {
		b.set("discount", *patch.Discount)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE fees SET %s WHERE id = $%d RETURNING `+feeColumns, b.clause(), b.next())
	args := append(b.args, id)

	fee, err := scanFee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Fee")
		}
		return nil, translateWriteError(err, "fee")
	}

	return fee, nil
}

// TotalCollected sums paid amounts across fully paid challans.
func (r *FeeRepository) TotalCollected(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(paid_amount), 0) FROM fees WHERE status = $1`, models.FeePaid).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing fee collection: %w", err)
	}
	return total, nil
}

// CountByStatus counts challans in the given status.
func (r *FeeRepository) CountByStatus(ctx context.Context, status models.FeeStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM fees WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting fees: %w", err)
	}
	return count, nil
}
