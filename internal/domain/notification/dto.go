package notification

// ListResponse for the list endpoint
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}

// UnreadCountResponse for the unread count endpoint
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// AnnounceRequest is the admin payload for sending an announcement. Leave
// UserID empty to broadcast to every user.
type AnnounceRequest struct {
	UserID  string `json:"user_id" validate:"omitempty,max=64"`
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// AnnounceResponse reports how many users received an announcement.
type AnnounceResponse struct {
	Recipients int `json:"recipients"`
}
