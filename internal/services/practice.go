package services

import (
	"context"
	"errors"

	"examly/internal/logger"
	"examly/internal/models"

	"go.uber.org/zap"
)

var ErrInvalidChoice = errors.New("недопустимый вариант ответа")

type PracticeRepo interface {
	GetRandomApproved(ctx context.Context) (*models.Question, error)
	GetQuestionByID(ctx context.Context, id int) (*models.Question, error)
	SaveAnswer(ctx context.Context, a *models.Answer) error
}

type PracticeService struct {
	repo PracticeRepo
}

func NewPracticeService(repo PracticeRepo) *PracticeService {
	return &PracticeService{repo: repo}
}

// AnswerResult — обратная связь по ответу: верно ли, правильная буква
// и пояснения ко всем вариантам.
type AnswerResult struct {
	IsCorrect    bool              `json:"is_correct"`
	Answer       string            `json:"answer"`
	Explanations map[string]string `json:"explanations"`
}

// NextQuestion — случайный одобренный вопрос для тренировки.
func (s *PracticeService) NextQuestion(ctx context.Context) (*models.Question, error) {
	q, err := s.repo.GetRandomApproved(ctx)
	if err != nil {
		logger.Log.Warn("Не удалось получить вопрос для тренировки (service)", zap.Error(err))
		return nil, err
	}
	return q, nil
}

// AnswerQuestion записывает попытку и возвращает обратную связь.
func (s *PracticeService) AnswerQuestion(ctx context.Context, userID, questionID int, choice string) (*AnswerResult, error) {
	q, err := s.repo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if _, ok := q.Choices[choice]; !ok {
		logger.Log.Warn("Недопустимый вариант ответа (service)",
			zap.Int("question_id", questionID), zap.String("choice", choice))
		return nil, ErrInvalidChoice
	}

	answer := &models.Answer{
		UserID:     userID,
		QuestionID: questionID,
		Choice:     choice,
		IsCorrect:  choice == q.Answer,
	}
	if err := s.repo.SaveAnswer(ctx, answer); err != nil {
		logger.Log.Error("Ошибка записи попытки ответа (service)", zap.Error(err),
			zap.Int("user_id", userID), zap.Int("question_id", questionID))
		return nil, err
	}

	logger.Log.Info("Ответ записан (service)",
		zap.Int("user_id", userID),
		zap.Int("question_id", questionID),
		zap.Bool("is_correct", answer.IsCorrect),
	)
	return &AnswerResult{
		IsCorrect:    answer.IsCorrect,
		Answer:       q.Answer,
		Explanations: q.Explanations,
	}, nil
}
