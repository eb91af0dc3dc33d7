package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, createdBy string, req *CreateCourseRequest) (*Course, error) {
	// check-then-insert; the unique index on code is the backstop
	if _, err := s.repo.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeTaken
	} else if !errors.Is(err, ErrCourseNotFound) {
		return nil, fmt.Errorf("check course code: %w", err)
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	c := &Course{
		ID:          id,
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Semester:    req.Semester,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit, (page-1)*limit)
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateCourseRequest) (*Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		c.Title = req.Title
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	if req.Instructor != "" {
		c.Instructor = req.Instructor
	}
	if req.Semester != "" {
		c.Semester = req.Semester
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
