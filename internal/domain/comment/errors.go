package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrNotOwner        = errors.New("user is not the comment owner")
	ErrOwnComment      = errors.New("cannot report own comment")
	ErrAlreadyReported = errors.New("comment already reported by this user")
	ErrReportClosed    = errors.New("report is already closed")
)
