package support

import (
	"context"
	"errors"
	"fmt"

	"studenthub/internal/domain/user"
	"studenthub/internal/pkg/logger"
)

// UserDirectory resolves requesters for ownership checks.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Notifier tells a requester their ticket changed status. Delivery is
// best-effort and never fails the status update.
type Notifier interface {
	NotifySupportUpdated(ctx context.Context, userID string, requestID int64, status string) error
}

type Service struct {
	repo     *Repository
	users    UserDirectory
	notifier Notifier
}

func NewService(repo *Repository, users UserDirectory, notifier Notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateSupportRequest) (*SupportRequest, error) {
	ticket := &SupportRequest{
		UserID:  userID,
		Subject: req.Subject,
		Message: req.Message,
		Status:  StatusOpen,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create support request: %w", err)
	}
	return ticket, nil
}

// Get returns a ticket to its owner or to an admin.
func (s *Service) Get(ctx context.Context, id int64, requesterID string) (*SupportRequest, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ticket.UserID != requesterID {
		admin, err := s.isAdmin(ctx, requesterID)
		if err != nil {
			return nil, fmt.Errorf("check requester: %w", err)
		}
		if !admin {
			return nil, ErrNotOwner
		}
	}

	return ticket, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]SupportRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context, status Status, page, limit int) ([]SupportRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, status, limit, (page-1)*limit)
}

// UpdateStatus moves a ticket to a new status. Closed tickets stay closed.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*SupportRequest, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.IsClosed() {
		return nil, ErrRequestClosed
	}

	note := req.AdminNote
	if note == "" {
		note = ticket.AdminNote
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status, note); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifySupportUpdated(ctx, ticket.UserID, id, string(req.Status)); err != nil {
			logger.Warn("support status notification failed",
				"request_id", id,
				"user_id", ticket.UserID,
				"error", err)
		}
	}

	return s.repo.GetByID(ctx, id)
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
