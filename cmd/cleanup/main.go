package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"studenthub/internal/database"
	"studenthub/internal/domain/comment"
	"studenthub/internal/domain/notification"
	"studenthub/internal/domain/support"
)

// One-shot retention job, meant to run from cron. Read notifications are kept
// 30 days, finished support requests and closed moderation reports 90 days.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studenthub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()

	res1 := db.Where("is_read = ? AND created_at < ?", true, now.AddDate(0, 0, -30)).
		Delete(&notification.Notification{})
	if res1.Error != nil {
		log.Fatalf("cleanup notifications failed: %v", res1.Error)
	}

	res2 := db.Where("status IN ? AND updated_at < ?",
		[]support.Status{support.StatusResolved, support.StatusClosed},
		now.AddDate(0, 0, -90)).
		Delete(&support.SupportRequest{})
	if res2.Error != nil {
		log.Fatalf("cleanup support_requests failed: %v", res2.Error)
	}

	res3 := db.Where("status <> ? AND updated_at < ?",
		comment.ReportStatusOpen, now.AddDate(0, 0, -90)).
		Delete(&comment.Report{})
	if res3.Error != nil {
		log.Fatalf("cleanup comment_reports failed: %v", res3.Error)
	}

	log.Printf("cleanup completed: notifications=%d support_requests=%d comment_reports=%d",
		res1.RowsAffected, res2.RowsAffected, res3.RowsAffected)
}
