package star

import (
	"context"
	"fmt"
)

// FileDirectory answers whether a file id resolves.
type FileDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo  Repository
	files FileDirectory
}

func NewService(repo Repository, files FileDirectory) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) Star(ctx context.Context, userID, fileID string) (*Star, error) {
	exists, err := s.files.Exists(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("check file: %w", err)
	}
	if !exists {
		return nil, ErrFileNotFound
	}
	return s.repo.Add(ctx, userID, fileID)
}

func (s *Service) Unstar(ctx context.Context, userID, fileID string) error {
	return s.repo.Remove(ctx, userID, fileID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Star, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) IsStarred(ctx context.Context, userID, fileID string) (bool, error) {
	return s.repo.Exists(ctx, userID, fileID)
}
