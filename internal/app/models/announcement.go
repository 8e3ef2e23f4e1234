package models

import "time"

// Announcement is a dated notice authored by a user, optionally targeted at a
// role and/or a program. Lists are served most recent first.
type Announcement struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	UserID     int64     `json:"userId" db:"user_id"`
	TargetRole *UserRole `json:"targetRole,omitempty" db:"target_role"`
	ProgramID  *int64    `json:"programId,omitempty" db:"program_id"`
	IsPinned   bool      `json:"isPinned" db:"is_pinned"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
