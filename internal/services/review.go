package services

import (
	"context"
	"errors"

	"examly/internal/logger"
	"examly/internal/models"

	"go.uber.org/zap"
)

var ErrInvalidVerdict = errors.New("недопустимый вердикт")

type ReviewRepo interface {
	GetQuestionByID(ctx context.Context, id int) (*models.Question, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Question, int, error)
	SetStatus(ctx context.Context, id int, status string) error
	AddReview(ctx context.Context, rev *models.QuestionReview) error
	ListReviews(ctx context.Context, questionID int) ([]*models.QuestionReview, error)
}

type ReviewService struct {
	repo ReviewRepo
}

func NewReviewService(repo ReviewRepo) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) ListPending(ctx context.Context, limit, offset int) ([]*models.Question, int, error) {
	return s.repo.ListByStatus(ctx, models.QuestionStatusPending, limit, offset)
}

// GetQuestion возвращает вопрос вместе с историей вердиктов.
func (s *ReviewService) GetQuestion(ctx context.Context, id int) (*models.Question, []*models.QuestionReview, error) {
	q, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return q, reviews, nil
}

// SubmitVerdict пишет запись аудита и переводит вопрос в approved/rejected.
func (s *ReviewService) SubmitVerdict(ctx context.Context, reviewerID, questionID int, verdict, comment string) error {
	var status string
	switch verdict {
	case models.ReviewVerdictApprove:
		status = models.QuestionStatusApproved
	case models.ReviewVerdictReject:
		status = models.QuestionStatusRejected
	default:
		return ErrInvalidVerdict
	}

	if _, err := s.repo.GetQuestionByID(ctx, questionID); err != nil {
		return err
	}

	rev := &models.QuestionReview{
		QuestionID: questionID,
		ReviewerID: reviewerID,
		Verdict:    verdict,
		Comment:    comment,
	}
	if err := s.repo.AddReview(ctx, rev); err != nil {
		logger.Log.Error("Ошибка записи вердикта (service)", zap.Error(err), zap.Int("question_id", questionID))
		return err
	}

	if err := s.repo.SetStatus(ctx, questionID, status); err != nil {
		logger.Log.Error("Ошибка смены статуса вопроса (service)", zap.Error(err), zap.Int("question_id", questionID))
		return err
	}

	logger.Log.Info("Вердикт по вопросу записан (service)",
		zap.Int("question_id", questionID),
		zap.Int("reviewer_id", reviewerID),
		zap.String("verdict", verdict),
	)
	return nil
}
