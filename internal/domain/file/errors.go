package file

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrNotOwner        = errors.New("you do not own this file")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrEmptyFile       = errors.New("file is empty")
	ErrStorageWrite    = errors.New("could not store file")
	ErrDeleteFailed    = errors.New("could not delete file record")
)
