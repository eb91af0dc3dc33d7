package comment

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

func (r *Repository) Create(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	var c Comment
	err := r.db.WithContext(ctx).Preload("Author").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByCourse returns a course's comments oldest first, with authors attached.
func (r *Repository) ListByCourse(ctx context.Context, courseID string) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Comment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *Repository) CreateReport(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *Repository) GetReportByID(ctx context.Context, id int64) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).
		Preload("Comment").
		Preload("Comment.Author").
		First(&rep, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

// ListReports returns reports newest first, optionally filtered by status.
func (r *Repository) ListReports(ctx context.Context, status ReportStatus) ([]Report, error) {
	q := r.db.WithContext(ctx).
		Preload("Comment").
		Preload("Comment.Author").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reports []Report
	err := q.Find(&reports).Error
	return reports, err
}

// HasOpenReport reports whether the user already has an open report on the comment.
func (r *Repository) HasOpenReport(ctx context.Context, commentID int64, reporterID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("comment_id = ? AND reporter_id = ? AND status = ?", commentID, reporterID, ReportStatusOpen).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) UpdateReportStatus(ctx context.Context, id int64, status ReportStatus, resolvedBy string) error {
	res := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "resolved_by": resolvedBy})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
