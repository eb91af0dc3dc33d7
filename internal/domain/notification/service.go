package notification

import (
	"context"
	"errors"
	"fmt"

	"studenthub/internal/domain/user"
)

// UserDirectory resolves announcement recipients.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type Service struct {
	repo  *Repository
	users UserDirectory
	hub   *Hub
}

func NewService(repo *Repository, users UserDirectory, hub *Hub) *Service {
	return &Service{repo: repo, users: users, hub: hub}
}

// List returns the user's latest notifications plus their unread count.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id int64, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

// Announce delivers an admin message to one user, or to everyone when
// req.UserID is empty. Returns the number of recipients.
func (s *Service) Announce(ctx context.Context, req AnnounceRequest) (int, error) {
	if req.UserID != "" {
		if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return 0, ErrRecipientNotFound
			}
			return 0, fmt.Errorf("resolve recipient: %w", err)
		}
		if err := s.create(ctx, req.UserID, TypeAnnouncement, req.Title, req.Message, nil); err != nil {
			return 0, err
		}
		return 1, nil
	}

	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list recipients: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	batch := make([]Notification, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, Notification{
			UserID:  id,
			Type:    TypeAnnouncement,
			Title:   req.Title,
			Message: req.Message,
		})
	}
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("store announcement: %w", err)
	}

	for i := range batch {
		s.push(batch[i].UserID, &batch[i])
	}
	return len(ids), nil
}

func (s *Service) NotifySupportUpdated(ctx context.Context, userID string, requestID int64, status string) error {
	return s.create(
		ctx,
		userID,
		TypeSupportUpdated,
		"Support request updated",
		fmt.Sprintf("Your support request #%d is now %s", requestID, status),
		map[string]any{
			"request_id": requestID,
			"status":     status,
		},
	)
}

func (s *Service) NotifyCommentRemoved(ctx context.Context, authorID, courseID, reason string) error {
	msg := "A comment you posted was removed by moderators"
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.create(
		ctx,
		authorID,
		TypeCommentRemoved,
		"Comment removed",
		msg,
		map[string]any{
			"course_id": courseID,
		},
	)
}

func (s *Service) create(ctx context.Context, userID string, t Type, title, message string, data map[string]any) error {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.push(userID, n)
	return nil
}

func (s *Service) push(userID string, n *Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Send(userID, &Event{Type: EventNotification, Payload: n})
}
