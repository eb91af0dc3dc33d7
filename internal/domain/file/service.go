package file

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studenthub/internal/domain/user"
	"studenthub/internal/pkg/logger"
	"studenthub/internal/storage"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// AllowedMimeTypes lists the declared content types a course material may
// carry: documents, spreadsheets, presentations, plain text, images, archives.
var AllowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/plain":                   true,
	"image/jpeg":                   true,
	"image/png":                    true,
	"image/gif":                    true,
	"application/zip":              true,
	"application/x-rar-compressed": true,
	"application/vnd.rar":          true,
}

// UserDirectory resolves requester identities. The admin flag is read from
// the directory record, never from request data.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// CourseDirectory answers whether a course id resolves.
type CourseDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// IngestInput carries an upload as declared by the client. Size and MimeType
// are validated before the object store is touched.
type IngestInput struct {
	Reader      io.Reader
	Filename    string
	MimeType    string
	Size        int64
	Description string
}

// Service implements the two file workflows: ingest (validate, store blob,
// insert record, roll back the blob if the insert fails) and remove (authorize,
// best-effort blob delete, delete record).
type Service struct {
	repo    Repository
	store   storage.ObjectStorage
	users   UserDirectory
	courses CourseDirectory
}

func NewService(repo Repository, store storage.ObjectStorage, users UserDirectory, courses CourseDirectory) *Service {
	return &Service{repo: repo, store: store, users: users, courses: courses}
}

// Ingest validates and stores an upload for a course. Validation failures
// return before any object-store call.
func (s *Service) Ingest(ctx context.Context, courseID, uploaderID string, in IngestInput) (*FileRecord, error) {
	if in.Size == 0 {
		operationsTotal.WithLabelValues("upload", "rejected").Inc()
		return nil, ErrEmptyFile
	}
	if in.Size > MaxFileSize {
		operationsTotal.WithLabelValues("upload", "rejected").Inc()
		return nil, ErrFileTooLarge
	}

	mimeType := normalizeMime(in.MimeType)
	if !AllowedMimeTypes[mimeType] {
		operationsTotal.WithLabelValues("upload", "rejected").Inc()
		return nil, ErrInvalidMimeType
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		operationsTotal.WithLabelValues("upload", "not_found").Inc()
		return nil, ErrCourseNotFound
	}

	// Unique object name: uploader id + timestamp + uuid + original extension.
	now := time.Now()
	id := uuid.New().String()
	ext := safeExt(in.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	objectPath := fmt.Sprintf("%s/%s_%d_%s%s", courseID, uploaderID, now.UnixMilli(), id, ext)

	if err := s.store.Put(ctx, objectPath, in.Reader, in.Size, mimeType); err != nil {
		logger.Error("file upload: storage write failed", "path", objectPath, "error", err)
		operationsTotal.WithLabelValues("upload", "storage_error").Inc()
		return nil, ErrStorageWrite
	}

	var description *string
	if in.Description != "" {
		description = &in.Description
	}

	record := &FileRecord{
		ID:          id,
		CourseID:    courseID,
		OwnerID:     uploaderID,
		Name:        in.Filename,
		Size:        in.Size,
		MimeType:    mimeType,
		URL:         s.store.PublicURL(objectPath),
		Description: description,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		// Roll the blob back so no orphan remains; a failed rollback only
		// leaks a blob and must not mask the insert error.
		if delErr := s.store.Delete(ctx, objectPath); delErr != nil {
			logger.Warn("file upload: rollback delete failed", "path", objectPath, "error", delErr)
		}
		operationsTotal.WithLabelValues("upload", "db_error").Inc()
		return nil, fmt.Errorf("save file record: %w", err)
	}

	operationsTotal.WithLabelValues("upload", "success").Inc()
	return record, nil
}

// Remove deletes a course file. Only the owner or an administrator may
// remove it. The blob delete is best-effort: a dangling blob is preferred
// over a dangling record.
func (s *Service) Remove(ctx context.Context, courseID, fileID, requesterID string) error {
	record, err := s.repo.GetByCourseAndID(ctx, courseID, fileID)
	if err != nil {
		if err == ErrFileNotFound {
			operationsTotal.WithLabelValues("delete", "not_found").Inc()
		}
		return err
	}

	if record.OwnerID != requesterID {
		isAdmin, err := s.isAdmin(ctx, requesterID)
		if err != nil {
			return fmt.Errorf("resolve requester: %w", err)
		}
		if !isAdmin {
			operationsTotal.WithLabelValues("delete", "forbidden").Inc()
			return ErrNotOwner
		}
	}

	objectPath := objectPathFromURL(record.CourseID, record.URL)
	if err := s.store.Delete(ctx, objectPath); err != nil {
		logger.Warn("file delete: object removal failed, removing record anyway", "path", objectPath, "error", err)
	}

	if err := s.repo.Delete(ctx, fileID); err != nil {
		logger.Error("file delete: record removal failed", "file_id", fileID, "error", err)
		operationsTotal.WithLabelValues("delete", "db_error").Inc()
		return ErrDeleteFailed
	}

	operationsTotal.WithLabelValues("delete", "success").Inc()
	return nil
}

// Get returns one record scoped to its course.
func (s *Service) Get(ctx context.Context, courseID, fileID string) (*FileRecord, error) {
	return s.repo.GetByCourseAndID(ctx, courseID, fileID)
}

// ListByCourse returns a course's records, newest first.
func (s *Service) ListByCourse(ctx context.Context, courseID string) ([]*FileRecord, error) {
	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, ErrCourseNotFound
	}
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *Service) isAdmin(ctx context.Context, requesterID string) (bool, error) {
	u, err := s.users.GetByID(ctx, requesterID)
	if err == user.ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}

// normalizeMime strips parameters such as "; charset=utf-8" from a declared
// content type.
func normalizeMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// objectPathFromURL rebuilds the storage path from a stored public URL:
// the last path segment prefixed with the course id.
func objectPathFromURL(courseID, fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return courseID + "/" + path.Base(fileURL)
	}
	return courseID + "/" + path.Base(u.Path)
}

// safeExt keeps the original extension when it is plain ascii alphanumerics,
// anything else is discarded.
func safeExt(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return strings.ToLower(ext)
}

func mimeToExt(mimeType string) string {
	switch mimeType {
	case "application/pdf":
		return ".pdf"
	case "application/msword":
		return ".doc"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ".docx"
	case "application/vnd.ms-excel":
		return ".xls"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return ".xlsx"
	case "application/vnd.ms-powerpoint":
		return ".ppt"
	case "application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return ".pptx"
	case "text/plain":
		return ".txt"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "application/zip":
		return ".zip"
	case "application/x-rar-compressed", "application/vnd.rar":
		return ".rar"
	default:
		return ".bin"
	}
}
