package dto

// CreateAnnouncementRequest publishes an announcement.
type CreateAnnouncementRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	UserID     int64   `json:"userId" binding:"required"`
	TargetRole *string `json:"targetRole" binding:"omitempty,oneof=admin faculty accountant"`
	ProgramID  *int64  `json:"programId"`
	IsPinned   *bool   `json:"isPinned"`
}

// UpdateAnnouncementRequest patches an announcement.
type UpdateAnnouncementRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	TargetRole *string `json:"targetRole" binding:"omitempty,oneof=admin faculty accountant"`
	ProgramID  *int64  `json:"programId"`
	IsPinned   *bool   `json:"isPinned"`
}

// AnnouncementFilter narrows announcement lists.
type AnnouncementFilter struct {
	TargetRole string
	ProgramID  *int64
	IsPinned   *bool
}
