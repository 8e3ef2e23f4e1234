package models

import "time"

// User defines a login account based on the 'users' table.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Password     string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullName" db:"full_name"`
	Role         UserRole  `json:"role" db:"role"`
	ProfileImage *string   `json:"profileImage,omitempty" db:"profile_image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
