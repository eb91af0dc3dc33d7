package comment

import (
	"time"

	"studenthub/internal/domain/user"
)

// Comment is a course discussion entry.
type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CourseID  string    `gorm:"not null;index" json:"course_id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Author *user.User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string { return "comments" }

// ReportStatus tracks a report through moderation.
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusDismissed ReportStatus = "dismissed"
	ReportStatusResolved  ReportStatus = "resolved"
)

// Report flags a comment for moderation. Resolving a report removes the
// comment; dismissing keeps it.
type Report struct {
	ID         int64        `gorm:"primaryKey" json:"id"`
	CommentID  int64        `gorm:"not null;index" json:"comment_id"`
	ReporterID string       `gorm:"not null;index" json:"reporter_id"`
	Reason     string       `gorm:"not null" json:"reason"`
	Status     ReportStatus `gorm:"not null;default:open;index" json:"status"`
	ResolvedBy *string      `json:"resolved_by,omitempty"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Comment *Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID"`
}

func (Report) TableName() string { return "comment_reports" }

// IsOpen reports whether the report still awaits moderation.
func (r *Report) IsOpen() bool {
	return r.Status == ReportStatusOpen
}
