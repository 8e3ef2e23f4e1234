package dto

// CreateFeeStructureRequest creates a billing template for a program/class.
type CreateFeeStructureRequest struct {
	ProgramID   int64   `json:"programId" binding:"required"`
	ClassID     int64   `json:"classId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Frequency   string  `json:"frequency" binding:"required,oneof=monthly quarterly bi-annual annual"`
	Description *string `json:"description"`
}

// CreateFeeRequest issues a challan to a student. Status is caller-supplied;
// it is not derived from amount/paidAmount.
type CreateFeeRequest struct {
	StudentID      int64    `json:"studentId" binding:"required"`
	FeeStructureID int64    `json:"feeStructureId" binding:"required"`
	ChallanID      string   `json:"challanId" binding:"required"`
	Amount         float64  `json:"amount" binding:"required,gt=0"`
	DueDate        string   `json:"dueDate" binding:"required,datetime=2006-01-02"`
	PaidAmount     *float64 `json:"paidAmount" binding:"omitempty,gte=0"`
	Status         string   `json:"status" binding:"required,oneof=paid unpaid 'partially paid' overdue"`
	PaymentDate    *string  `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Discount       *float64 `json:"discount" binding:"omitempty,gte=0"`
}

// UpdateFeeRequest patches a challan (typically to record a payment).
type UpdateFeeRequest struct {
	StudentID      *int64   `json:"studentId"`
	FeeStructureID *int64   `json:"feeStructureId"`
	ChallanID      *string  `json:"challanId"`
	Amount         *float64 `json:"amount" binding:"omitempty,gt=0"`
	DueDate        *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PaidAmount     *float64 `json:"paidAmount" binding:"omitempty,gte=0"`
	Status         *string  `json:"status" binding:"omitempty,oneof=paid unpaid 'partially paid' overdue"`
	PaymentDate    *string  `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Discount       *float64 `json:"discount" binding:"omitempty,gte=0"`
}

// FeeStructureFilter narrows fee structure lists.
type FeeStructureFilter struct {
	ProgramID *int64
	ClassID   *int64
}

// FeeFilter narrows challan lists.
type FeeFilter struct {
	StudentID *int64
	Status    string
}
