package star

import (
	"time"

	"studenthub/internal/domain/file"
)

// Star представляет связь пользователя с отмеченным материалом курса.
// Каждая запись означает, что пользователь добавил файл в свой список избранного.
type Star struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_file"`
	FileID    string    `json:"file_id" gorm:"not null;index;uniqueIndex:idx_user_file"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Virtual field для preload
	File *file.FileRecord `json:"file,omitempty" gorm:"foreignKey:FileID"`
}

func (Star) TableName() string { return "stars" }
