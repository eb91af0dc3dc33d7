package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"studenthub/internal/database"
	"studenthub/internal/domain/comment"
	"studenthub/internal/domain/course"
	"studenthub/internal/domain/file"
	"studenthub/internal/domain/notification"
	"studenthub/internal/domain/star"
	"studenthub/internal/domain/support"
	"studenthub/internal/domain/user"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studenthub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&user.User{},
		&course.Course{},
		&file.FileRecord{},
		&star.Star{},
		&comment.Comment{},
		&comment.Report{},
		&support.SupportRequest{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM comment_reports")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM support_requests")
	db.Exec("DELETE FROM stars")
	db.Exec("DELETE FROM course_files")
	db.Exec("DELETE FROM courses")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	// Fixed IDs so endpoints are easy to hit with X-User-Id
	admin := user.User{
		ID:       "admin-001",
		Email:    "admin@studenthub.kz",
		FullName: "Администратор",
		IsAdmin:  true,
	}
	db.Create(&admin)

	students := []user.User{
		{ID: "student-001", Email: "asel@student.kz", FullName: "Асель Нурланова"},
		{ID: "student-002", Email: "bekzat@student.kz", FullName: "Бекзат Серик"},
		{ID: "student-003", Email: "dana@student.kz", FullName: "Dana Omarova"},
	}
	for i := range students {
		db.Create(&students[i])
	}

	// ================== COURSES ==================
	log.Println("Creating courses...")

	courses := []course.Course{
		{
			ID:          "crs-cs101",
			Code:        "CS101",
			Title:       "Introduction to Programming",
			Description: "Основы программирования: переменные, циклы, функции",
			Instructor:  "Dr. Ahmetov",
			Semester:    "2026-fall",
			CreatedBy:   admin.ID,
		},
		{
			ID:          "crs-ma201",
			Code:        "MA201",
			Title:       "Linear Algebra",
			Description: "Matrices, vector spaces and linear maps",
			Instructor:  "Prof. Suleimenova",
			Semester:    "2026-fall",
			CreatedBy:   admin.ID,
		},
		{
			ID:         "crs-ph110",
			Code:       "PH110",
			Title:      "Mechanics",
			Instructor: "Dr. Kim",
			Semester:   "2026-spring",
			CreatedBy:  admin.ID,
		},
	}
	for i := range courses {
		db.Create(&courses[i])
	}

	// ================== FILES ==================
	log.Println("Creating course files...")

	baseURL := os.Getenv("LOCAL_STORAGE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/uploads"
	}

	files := make([]file.FileRecord, 0, 4)
	seedFile := func(courseID, ownerID, name, mime string, size int64, description string) {
		id := uuid.New().String()
		objectPath := fmt.Sprintf("%s/%s_%d_%s.pdf", courseID, ownerID, time.Now().UnixMilli(), id)
		rec := file.FileRecord{
			ID:       id,
			CourseID: courseID,
			OwnerID:  ownerID,
			Name:     name,
			Size:     size,
			MimeType: mime,
			URL:      baseURL + "/" + objectPath,
		}
		if description != "" {
			rec.Description = &description
		}
		db.Create(&rec)
		files = append(files, rec)
	}

	seedFile(courses[0].ID, students[0].ID, "lecture-01.pdf", "application/pdf", 245760, "Конспект первой лекции")
	seedFile(courses[0].ID, students[1].ID, "homework-01.pdf", "application/pdf", 102400, "")
	seedFile(courses[1].ID, students[2].ID, "matrices-cheatsheet.pdf", "application/pdf", 81920, "Exam prep")

	// ================== STARS ==================
	log.Println("Creating stars...")
	db.Create(&star.Star{UserID: students[1].ID, FileID: files[0].ID})
	db.Create(&star.Star{UserID: students[2].ID, FileID: files[0].ID})
	db.Create(&star.Star{UserID: students[0].ID, FileID: files[2].ID})

	// ================== COMMENTS ==================
	log.Println("Creating comments...")

	comments := []comment.Comment{
		{CourseID: courses[0].ID, UserID: students[0].ID, Content: "Кто-нибудь понял вторую задачу из ДЗ?"},
		{CourseID: courses[0].ID, UserID: students[1].ID, Content: "Check the lecture-01 notes, section 3 covers it"},
		{CourseID: courses[1].ID, UserID: students[2].ID, Content: "Midterm is on week 8, not week 7"},
	}
	for i := range comments {
		db.Create(&comments[i])
	}

	// One open report for the moderation queue
	db.Create(&comment.Report{
		CommentID:  comments[1].ID,
		ReporterID: students[0].ID,
		Reason:     "spam link",
		Status:     comment.ReportStatusOpen,
	})

	// ================== SUPPORT ==================
	log.Println("Creating support requests...")
	db.Create(&support.SupportRequest{
		UserID:  students[2].ID,
		Subject: "Cannot upload files",
		Message: "Upload returns an error for my 8MB PDF",
		Status:  support.StatusOpen,
	})
	db.Create(&support.SupportRequest{
		UserID:    students[0].ID,
		Subject:   "Wrong course code",
		Message:   "CS101 is listed twice in my schedule",
		Status:    support.StatusResolved,
		AdminNote: "Duplicate removed",
	})

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")
	for _, s := range students {
		db.Create(&notification.Notification{
			UserID:  s.ID,
			Type:    notification.TypeAnnouncement,
			Title:   "Добро пожаловать в Student Hub",
			Message: "Материалы курсов уже доступны",
			IsRead:  rand.Intn(2) == 0,
		})
	}

	log.Println("🎉 Seed completed!")
	log.Println("Admin:    X-User-Id: admin-001")
	log.Println("Students: X-User-Id: student-001 ... student-003")
	log.Println("Courses:  crs-cs101, crs-ma201, crs-ph110")
}
