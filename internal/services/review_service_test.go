package services

import (
	"context"
	"testing"

	"examly/internal/models"
	"examly/internal/repository"
)

func TestSubmitVerdict_ApproveAndReject(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusPending)
	repo.questions[2] = sampleQuestion(2, models.QuestionStatusPending)
	service := NewReviewService(repo)

	if err := service.SubmitVerdict(context.Background(), 3, 1, models.ReviewVerdictApprove, "норм"); err != nil {
		t.Fatalf("ошибка вердикта: %v", err)
	}
	if repo.questions[1].Status != models.QuestionStatusApproved {
		t.Fatalf("вопрос не одобрен: %s", repo.questions[1].Status)
	}

	if err := service.SubmitVerdict(context.Background(), 3, 2, models.ReviewVerdictReject, "источник битый"); err != nil {
		t.Fatalf("ошибка вердикта: %v", err)
	}
	if repo.questions[2].Status != models.QuestionStatusRejected {
		t.Fatalf("вопрос не отклонён: %s", repo.questions[2].Status)
	}

	if len(repo.reviews) != 2 {
		t.Fatalf("ожидались две записи аудита, есть %d", len(repo.reviews))
	}
	if repo.reviews[0].ReviewerID != 3 || repo.reviews[0].Verdict != models.ReviewVerdictApprove {
		t.Fatalf("запись аудита неверна: %+v", repo.reviews[0])
	}
}

func TestSubmitVerdict_InvalidVerdict(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusPending)
	service := NewReviewService(repo)

	if err := service.SubmitVerdict(context.Background(), 3, 1, "maybe", ""); err != ErrInvalidVerdict {
		t.Fatalf("ожидалась ErrInvalidVerdict, получено: %v", err)
	}
	if repo.questions[1].Status != models.QuestionStatusPending {
		t.Fatal("статус не должен был измениться")
	}
}

func TestSubmitVerdict_UnknownQuestion(t *testing.T) {
	service := NewReviewService(newMockQuestionRepo())

	if err := service.SubmitVerdict(context.Background(), 3, 404, models.ReviewVerdictApprove, ""); err != repository.ErrNotFound {
		t.Fatalf("ожидалась ErrNotFound, получено: %v", err)
	}
}

func TestGetQuestion_WithReviews(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusPending)
	service := NewReviewService(repo)

	if err := service.SubmitVerdict(context.Background(), 3, 1, models.ReviewVerdictApprove, "ок"); err != nil {
		t.Fatalf("ошибка вердикта: %v", err)
	}

	q, reviews, err := service.GetQuestion(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка получения вопроса: %v", err)
	}
	if q.ID != 1 || len(reviews) != 1 || reviews[0].Comment != "ок" {
		t.Fatalf("вопрос или история вердиктов неверны: %+v %+v", q, reviews)
	}
}
