package models

import "time"

// Program is an academic program/department (e.g. a diploma track).
type Program struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Class is a year cohort inside a program (1st, 2nd, 3rd year).
type Class struct {
	ID        int64     `json:"id" db:"id"`
	ProgramID int64     `json:"programId" db:"program_id"`
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Section subdivides a class into a teachable group (A, B, C...).
type Section struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
