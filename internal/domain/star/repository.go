package star

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Add(ctx context.Context, userID, fileID string) (*Star, error)
	Remove(ctx context.Context, userID, fileID string) error
	ListByUser(ctx context.Context, userID string) ([]Star, error)
	Exists(ctx context.Context, userID, fileID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add записывает отметку. Проверка на дубликат сначала запросом, уникальный
// индекс (user_id, file_id) страхует от гонки.
func (r *repository) Add(ctx context.Context, userID, fileID string) (*Star, error) {
	exists, err := r.Exists(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyStarred
	}

	s := &Star{UserID: userID, FileID: fileID}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyStarred
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("File").First(s, s.ID).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) Remove(ctx context.Context, userID, fileID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND file_id = ?", userID, fileID).
		Delete(&Star{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStarNotFound
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Star, error) {
	var stars []Star
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("File").
		Order("created_at DESC").
		Find(&stars).Error
	return stars, err
}

func (r *repository) Exists(ctx context.Context, userID, fileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Star{}).
		Where("user_id = ? AND file_id = ?", userID, fileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
