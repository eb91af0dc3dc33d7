package support

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studenthub/internal/database"
	"studenthub/internal/domain/user"
)

type statusNote struct {
	userID    string
	requestID int64
	status    string
}

type recordingNotifier struct {
	notes []statusNote
	fail  bool
}

func (n *recordingNotifier) NotifySupportUpdated(_ context.Context, userID string, requestID int64, status string) error {
	if n.fail {
		return errors.New("delivery failed")
	}
	n.notes = append(n.notes, statusNote{userID: userID, requestID: requestID, status: status})
	return nil
}

func setupService(t *testing.T) (*Service, *recordingNotifier, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &SupportRequest{}))

	notifier := &recordingNotifier{}
	svc := NewService(NewRepository(db), user.NewRepository(db), notifier)
	return svc, notifier, db
}

func seedUser(t *testing.T, db *gorm.DB, id string, admin bool) {
	t.Helper()
	require.NoError(t, db.Create(&user.User{ID: id, Email: id + "@example.com", FullName: "User " + id, IsAdmin: admin}).Error)
}

func fileTicket(t *testing.T, svc *Service, userID, subject string) *SupportRequest {
	t.Helper()
	ticket, err := svc.Create(context.Background(), userID, CreateSupportRequest{
		Subject: subject,
		Message: "please help with " + subject,
	})
	require.NoError(t, err)
	return ticket
}

func TestCreateSupportRequest(t *testing.T) {
	svc, _, _ := setupService(t)

	ticket := fileTicket(t, svc, "student-1", "upload fails")
	require.NotZero(t, ticket.ID)
	require.Equal(t, StatusOpen, ticket.Status)
	require.Equal(t, "student-1", ticket.UserID)
}

func TestGetScopedToOwner(t *testing.T) {
	svc, _, db := setupService(t)
	seedUser(t, db, "student-2", false)
	seedUser(t, db, "admin-1", true)

	ticket := fileTicket(t, svc, "student-1", "upload fails")

	got, err := svc.Get(context.Background(), ticket.ID, "student-1")
	require.NoError(t, err)
	require.Equal(t, ticket.ID, got.ID)

	_, err = svc.Get(context.Background(), ticket.ID, "student-2")
	require.ErrorIs(t, err, ErrNotOwner)

	got, err = svc.Get(context.Background(), ticket.ID, "admin-1")
	require.NoError(t, err)
	require.Equal(t, ticket.ID, got.ID)
}

func TestGetUnknownRequest(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Get(context.Background(), 404, "student-1")
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListMine(t *testing.T) {
	svc, _, _ := setupService(t)

	fileTicket(t, svc, "student-1", "first")
	fileTicket(t, svc, "student-1", "second")
	fileTicket(t, svc, "student-2", "other")

	mine, err := svc.ListMine(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, ticket := range mine {
		require.Equal(t, "student-1", ticket.UserID)
	}
}

func TestAdminListFiltersByStatus(t *testing.T) {
	svc, _, db := setupService(t)
	seedUser(t, db, "admin-1", true)

	first := fileTicket(t, svc, "student-1", "first")
	fileTicket(t, svc, "student-2", "second")

	_, err := svc.UpdateStatus(context.Background(), first.ID, UpdateStatusRequest{Status: StatusResolved})
	require.NoError(t, err)

	open, total, err := svc.List(context.Background(), StatusOpen, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, open, 1)
	require.Equal(t, "second", open[0].Subject)

	all, total, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, all, 2)
}

func TestUpdateStatusNotifiesOwner(t *testing.T) {
	svc, notifier, _ := setupService(t)

	ticket := fileTicket(t, svc, "student-1", "upload fails")

	updated, err := svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{
		Status:    StatusInProgress,
		AdminNote: "looking into it",
	})
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, updated.Status)
	require.Equal(t, "looking into it", updated.AdminNote)

	require.Len(t, notifier.notes, 1)
	require.Equal(t, "student-1", notifier.notes[0].userID)
	require.Equal(t, ticket.ID, notifier.notes[0].requestID)
	require.Equal(t, "in_progress", notifier.notes[0].status)
}

func TestUpdateStatusKeepsNoteWhenOmitted(t *testing.T) {
	svc, _, _ := setupService(t)

	ticket := fileTicket(t, svc, "student-1", "upload fails")

	_, err := svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{
		Status:    StatusInProgress,
		AdminNote: "first note",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{Status: StatusResolved})
	require.NoError(t, err)
	require.Equal(t, "first note", updated.AdminNote)
}

func TestUpdateStatusSurvivesNotifierFailure(t *testing.T) {
	svc, notifier, _ := setupService(t)
	notifier.fail = true

	ticket := fileTicket(t, svc, "student-1", "upload fails")

	updated, err := svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{Status: StatusResolved})
	require.NoError(t, err)
	require.Equal(t, StatusResolved, updated.Status)
}

func TestClosedRequestStaysClosed(t *testing.T) {
	svc, _, _ := setupService(t)

	ticket := fileTicket(t, svc, "student-1", "upload fails")

	_, err := svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{Status: StatusClosed})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), ticket.ID, UpdateStatusRequest{Status: StatusOpen})
	require.ErrorIs(t, err, ErrRequestClosed)
}
