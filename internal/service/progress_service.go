package service

import (
	"context"

	"prep-service/internal/models"
	"prep-service/internal/repository"
)

type ProgressService struct {
	Repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{Repo: repo}
}

func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	return s.Repo.Find(ctx, userID)
}

func (s *ProgressService) UpdateProgress(ctx context.Context, userID string, fields map[string]interface{}) error {
	return s.Repo.Upsert(ctx, userID, fields)
}
