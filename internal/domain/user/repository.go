package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is read-only on purpose: accounts are provisioned by the identity
// provider, this service only resolves them.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&User{}).Order("created_at ASC").Pluck("id", &ids).Error
	return ids, err
}
