package course

import "time"

// Course is a catalog entry students attach materials to. The ID is an opaque
// string assigned by the catalog owner (a UUID when none is supplied).
type Course struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Code        string    `gorm:"column:code;uniqueIndex" json:"code"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Instructor  string    `gorm:"column:instructor" json:"instructor"`
	Semester    string    `gorm:"column:semester" json:"semester"`
	CreatedBy   string    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Course) TableName() string { return "courses" }
