package file

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *FileRecord) error
	GetByCourseAndID(ctx context.Context, courseID, id string) (*FileRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]*FileRecord, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *FileRecord) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) GetByCourseAndID(ctx context.Context, courseID, id string) (*FileRecord, error) {
	var f FileRecord
	err := r.db.WithContext(ctx).Where("id = ? AND course_id = ?", id, courseID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) ListByCourse(ctx context.Context, courseID string) ([]*FileRecord, error) {
	var files []*FileRecord
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&FileRecord{}).Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FileRecord{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
