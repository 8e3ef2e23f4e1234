package models

import "time"

// FeeStructure is the billing template fees are generated from for a
// program/class combination.
type FeeStructure struct {
	ID          int64        `json:"id" db:"id"`
	ProgramID   int64        `json:"programId" db:"program_id"`
	ClassID     int64        `json:"classId" db:"class_id"`
	Amount      float64      `json:"amount" db:"amount"`
	Frequency   FeeFrequency `json:"frequency" db:"frequency"`
	Description *string      `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}

// Fee is a challan (invoice) issued to a student. Status is caller-supplied,
// not derived from the amounts.
type Fee struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	FeeStructureID int64     `json:"feeStructureId" db:"fee_structure_id"`
	ChallanID      string    `json:"challanId" db:"challan_id"`
	Amount         float64   `json:"amount" db:"amount"`
	DueDate        string    `json:"dueDate" db:"due_date"`
	PaidAmount     float64   `json:"paidAmount" db:"paid_amount"`
	Status         FeeStatus `json:"status" db:"status"`
	PaymentDate    *string   `json:"paymentDate,omitempty" db:"payment_date"`
	Discount       float64   `json:"discount" db:"discount"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
