package comment

// CreateCommentRequest is the payload for posting a comment to a course.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// ReportRequest is the payload for flagging a comment.
type ReportRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}
