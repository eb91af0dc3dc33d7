package support

import "errors"

var (
	ErrRequestNotFound = errors.New("support request not found")
	ErrRequestClosed   = errors.New("support request is closed")
	ErrNotOwner        = errors.New("user is not the request owner")
)
