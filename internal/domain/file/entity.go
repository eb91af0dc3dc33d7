package file

import "time"

// FileRecord is the metadata row behind a stored course material. The blob
// itself lives in the object store under {course_id}/{unique_name}; URL points
// at it.
type FileRecord struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	CourseID    string    `gorm:"column:course_id;not null;index" json:"course_id"`
	OwnerID     string    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name        string    `gorm:"column:name" json:"name"` // original filename
	Size        int64     `gorm:"column:size" json:"size"`
	MimeType    string    `gorm:"column:mime_type" json:"mime_type"`
	URL         string    `gorm:"column:url" json:"url"`
	Description *string   `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FileRecord) TableName() string { return "course_files" }
