package notification

import "time"

// Type represents notification type
type Type string

const (
	TypeAnnouncement   Type = "announcement"    // Admin: объявление для студентов
	TypeSupportUpdated Type = "support_updated" // Student: статус обращения изменён
	TypeCommentRemoved Type = "comment_removed" // Student: комментарий удалён модератором
)

// Notification represents a user notification
type Notification struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index:idx_notifications_user_unread" json:"user_id"`
	Type      Type           `gorm:"not null" json:"type"`
	Title     string         `gorm:"not null" json:"title"`
	Message   string         `json:"message,omitempty"`
	Data      map[string]any `gorm:"serializer:json" json:"data,omitempty"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_notifications_user_unread" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
