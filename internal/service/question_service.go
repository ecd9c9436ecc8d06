package service

import (
	"context"
	"time"

	"prep-service/internal/models"
	"prep-service/internal/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]models.Question, error) {
	return s.Repo.Find(ctx, filter)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	question.Status = "active"
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt
	return s.Repo.Create(ctx, question)
}

// BulkCreate ingests a batch of questions, the replacement for the old
// one-off import scripts.
func (s *QuestionService) BulkCreate(ctx context.Context, questions []models.Question) (int, error) {
	now := time.Now()
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		questions[i].Status = "active"
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
	}
	if len(questions) == 0 {
		return 0, nil
	}
	if err := s.Repo.CreateMany(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
