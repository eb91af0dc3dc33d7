package support

import "time"

// Status represents where a support request sits in its lifecycle.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// SupportRequest is a help ticket filed by a student.
type SupportRequest struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	Status    Status    `gorm:"not null;default:open;index" json:"status"`
	AdminNote string    `json:"admin_note,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SupportRequest) TableName() string { return "support_requests" }

// IsOpen returns true while the request still needs attention.
func (r *SupportRequest) IsOpen() bool {
	return r.Status == StatusOpen || r.Status == StatusInProgress
}

// IsClosed returns true once the request reached its terminal state.
func (r *SupportRequest) IsClosed() bool {
	return r.Status == StatusClosed
}
