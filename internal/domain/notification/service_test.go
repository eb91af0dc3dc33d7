package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studenthub/internal/database"
	"studenthub/internal/domain/user"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &Notification{}))

	svc := NewService(NewRepository(db), user.NewRepository(db), nil)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&user.User{ID: id, Email: id + "@example.com", FullName: "User " + id}).Error)
}

func TestAnnounceToOneUser(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")
	seedUser(t, db, "student-2")

	count, err := svc.Announce(context.Background(), AnnounceRequest{
		UserID:  "student-1",
		Title:   "Exam moved",
		Message: "The CS101 exam moved to Friday",
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	list, unread, err := svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(1), unread)
	require.Equal(t, TypeAnnouncement, list[0].Type)
	require.Equal(t, "Exam moved", list[0].Title)

	_, unread, err = svc.List(context.Background(), "student-2", 20)
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestAnnounceToUnknownUser(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Announce(context.Background(), AnnounceRequest{
		UserID:  "ghost",
		Title:   "Hello",
		Message: "anyone there?",
	})
	require.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestAnnounceBroadcast(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")
	seedUser(t, db, "student-2")
	seedUser(t, db, "student-3")

	count, err := svc.Announce(context.Background(), AnnounceRequest{
		Title:   "Maintenance window",
		Message: "The hub is down Saturday night",
	})
	require.NoError(t, err)
	require.Equal(t, 3, count)

	for _, id := range []string{"student-1", "student-2", "student-3"} {
		unread, err := svc.UnreadCount(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, int64(1), unread)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	_, err := svc.Announce(context.Background(), AnnounceRequest{
		UserID:  "student-1",
		Title:   "Hello",
		Message: "hi",
	})
	require.NoError(t, err)

	list, _, err := svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	err = svc.MarkRead(context.Background(), id, "student-2")
	require.ErrorIs(t, err, ErrNotificationNotFound)

	require.NoError(t, svc.MarkRead(context.Background(), id, "student-1"))

	unread, err := svc.UnreadCount(context.Background(), "student-1")
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestMarkAllRead(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	for i := 0; i < 3; i++ {
		_, err := svc.Announce(context.Background(), AnnounceRequest{
			UserID:  "student-1",
			Title:   "Hello",
			Message: "hi",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllRead(context.Background(), "student-1"))

	unread, err := svc.UnreadCount(context.Background(), "student-1")
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	_, err := svc.Announce(context.Background(), AnnounceRequest{
		UserID:  "student-1",
		Title:   "Hello",
		Message: "hi",
	})
	require.NoError(t, err)

	list, _, err := svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	id := list[0].ID

	err = svc.Delete(context.Background(), id, "student-2")
	require.ErrorIs(t, err, ErrNotificationNotFound)

	require.NoError(t, svc.Delete(context.Background(), id, "student-1"))

	list, _, err = svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSupportUpdateCarriesData(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	require.NoError(t, svc.NotifySupportUpdated(context.Background(), "student-1", 42, "resolved"))

	list, _, err := svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, TypeSupportUpdated, list[0].Type)
	require.Contains(t, list[0].Message, "#42")
	require.Equal(t, "resolved", list[0].Data["status"])
}

func TestCommentRemovedMentionsReason(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	require.NoError(t, svc.NotifyCommentRemoved(context.Background(), "student-1", "cs101", "spam link"))

	list, _, err := svc.List(context.Background(), "student-1", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, TypeCommentRemoved, list[0].Type)
	require.Contains(t, list[0].Message, "spam link")
	require.Equal(t, "cs101", list[0].Data["course_id"])
}

func TestListLimitClamped(t *testing.T) {
	svc, db := setupService(t)
	seedUser(t, db, "student-1")

	for i := 0; i < 25; i++ {
		_, err := svc.Announce(context.Background(), AnnounceRequest{
			UserID:  "student-1",
			Title:   "Hello",
			Message: "hi",
		})
		require.NoError(t, err)
	}

	list, unread, err := svc.List(context.Background(), "student-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 20)
	require.Equal(t, int64(25), unread)
}
