package star

import "errors"

var (
	ErrAlreadyStarred = errors.New("file already starred")
	ErrStarNotFound   = errors.New("star not found")
	ErrFileNotFound   = errors.New("file not found")
)
