package support

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req *SupportRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*SupportRequest, error) {
	var req SupportRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]SupportRequest, error) {
	var requests []SupportRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// List returns requests newest first with an optional status filter,
// paginated, plus the total matching count.
func (r *Repository) List(ctx context.Context, status Status, limit, offset int) ([]SupportRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&SupportRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []SupportRequest
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	return requests, total, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, adminNote string) error {
	res := r.db.WithContext(ctx).
		Model(&SupportRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "admin_note": adminNote})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
