package comment

import (
	"context"
	"errors"
	"fmt"

	"studenthub/internal/domain/user"
	"studenthub/internal/pkg/logger"
)

// CourseDirectory is the course lookup the comment service depends on.
type CourseDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// UserDirectory resolves requesters for moderation checks.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Notifier tells a comment's author that moderation removed it. Delivery is
// best-effort and never fails the moderation action.
type Notifier interface {
	NotifyCommentRemoved(ctx context.Context, authorID, courseID, reason string) error
}

type Service struct {
	repo     *Repository
	courses  CourseDirectory
	users    UserDirectory
	notifier Notifier
}

func NewService(repo *Repository, courses CourseDirectory, users UserDirectory, notifier Notifier) *Service {
	return &Service{repo: repo, courses: courses, users: users, notifier: notifier}
}

func (s *Service) List(ctx context.Context, courseID string) ([]Comment, error) {
	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, ErrCourseNotFound
	}
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *Service) Create(ctx context.Context, courseID, userID string, req CreateCommentRequest) (*Comment, error) {
	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, ErrCourseNotFound
	}

	c := &Comment{
		CourseID: courseID,
		UserID:   userID,
		Content:  req.Content,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return s.repo.GetByID(ctx, c.ID)
}

// Delete removes a comment. Only the author or an admin may do this.
func (s *Service) Delete(ctx context.Context, commentID int64, requesterID string) error {
	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if c.UserID != requesterID {
		admin, err := s.isAdmin(ctx, requesterID)
		if err != nil {
			return fmt.Errorf("check requester: %w", err)
		}
		if !admin {
			return ErrNotOwner
		}
	}

	return s.repo.Delete(ctx, commentID)
}

// Report flags a comment for moderation. Authors cannot report themselves,
// and a user gets at most one open report per comment.
func (s *Service) Report(ctx context.Context, commentID int64, reporterID string, req ReportRequest) (*Report, error) {
	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID == reporterID {
		return nil, ErrOwnComment
	}

	dup, err := s.repo.HasOpenReport(ctx, commentID, reporterID)
	if err != nil {
		return nil, fmt.Errorf("check existing reports: %w", err)
	}
	if dup {
		return nil, ErrAlreadyReported
	}

	rep := &Report{
		CommentID:  commentID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Status:     ReportStatusOpen,
	}
	if err := s.repo.CreateReport(ctx, rep); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	rep.Comment = c
	return rep, nil
}

func (s *Service) ListReports(ctx context.Context, status ReportStatus) ([]Report, error) {
	return s.repo.ListReports(ctx, status)
}

// Dismiss closes a report without touching the comment.
func (s *Service) Dismiss(ctx context.Context, reportID int64, adminID string) (*Report, error) {
	rep, err := s.repo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !rep.IsOpen() {
		return nil, ErrReportClosed
	}

	if err := s.repo.UpdateReportStatus(ctx, reportID, ReportStatusDismissed, adminID); err != nil {
		return nil, fmt.Errorf("dismiss report: %w", err)
	}
	return s.repo.GetReportByID(ctx, reportID)
}

// Resolve upholds a report: the comment is deleted, the report marked
// resolved, and the author notified. Notification failures are logged only.
func (s *Service) Resolve(ctx context.Context, reportID int64, adminID string) (*Report, error) {
	rep, err := s.repo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !rep.IsOpen() {
		return nil, ErrReportClosed
	}

	removed := rep.Comment
	if removed != nil {
		if err := s.repo.Delete(ctx, rep.CommentID); err != nil && !errors.Is(err, ErrCommentNotFound) {
			return nil, fmt.Errorf("delete reported comment: %w", err)
		}
	}

	if err := s.repo.UpdateReportStatus(ctx, reportID, ReportStatusResolved, adminID); err != nil {
		return nil, fmt.Errorf("resolve report: %w", err)
	}

	if removed != nil && s.notifier != nil {
		if err := s.notifier.NotifyCommentRemoved(ctx, removed.UserID, removed.CourseID, rep.Reason); err != nil {
			logger.Warn("comment removal notification failed",
				"report_id", reportID,
				"author_id", removed.UserID,
				"error", err)
		}
	}

	return s.repo.GetReportByID(ctx, reportID)
}

func (s *Service) isAdmin(ctx context.Context, userID string) (bool, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin, nil
}
