package services

import (
	"context"
	"testing"

	"examly/internal/models"
	"examly/internal/repository"
)

type mockQuestionRepo struct {
	questions map[int]*models.Question
	answers   []*models.Answer
	reviews   []*models.QuestionReview
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{questions: make(map[int]*models.Question)}
}

func (m *mockQuestionRepo) GetRandomApproved(_ context.Context) (*models.Question, error) {
	for _, q := range m.questions {
		if q.Status == models.QuestionStatusApproved {
			return q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockQuestionRepo) GetQuestionByID(_ context.Context, id int) (*models.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return q, nil
}

func (m *mockQuestionRepo) SaveAnswer(_ context.Context, a *models.Answer) error {
	a.ID = len(m.answers) + 1
	m.answers = append(m.answers, a)
	return nil
}

func (m *mockQuestionRepo) ListByStatus(_ context.Context, status string, _, _ int) ([]*models.Question, int, error) {
	var out []*models.Question
	for _, q := range m.questions {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, len(out), nil
}

func (m *mockQuestionRepo) SetStatus(_ context.Context, id int, status string) error {
	q, ok := m.questions[id]
	if !ok {
		return repository.ErrNotFound
	}
	q.Status = status
	return nil
}

func (m *mockQuestionRepo) AddReview(_ context.Context, rev *models.QuestionReview) error {
	rev.ID = len(m.reviews) + 1
	m.reviews = append(m.reviews, rev)
	return nil
}

func (m *mockQuestionRepo) ListReviews(_ context.Context, questionID int) ([]*models.QuestionReview, error) {
	var out []*models.QuestionReview
	for _, rev := range m.reviews {
		if rev.QuestionID == questionID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func sampleQuestion(id int, status string) *models.Question {
	return &models.Question{
		ID:     id,
		Text:   "Какой код ответа у редиректа See Other?",
		Status: status,
		Answer: "b",
		Choices: map[string]string{
			"a": "301", "b": "303", "c": "307", "d": "308",
		},
		Explanations: map[string]string{
			"a": "301 — постоянный редирект", "b": "303 — See Other",
			"c": "307 — временный", "d": "308 — постоянный без смены метода",
		},
	}
}

func TestAnswerQuestion_CorrectAndIncorrect(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusApproved)
	service := NewPracticeService(repo)

	result, err := service.AnswerQuestion(context.Background(), 7, 1, "b")
	if err != nil {
		t.Fatalf("ошибка ответа: %v", err)
	}
	if !result.IsCorrect || result.Answer != "b" {
		t.Fatalf("верный ответ распознан как неверный: %+v", result)
	}

	result, err = service.AnswerQuestion(context.Background(), 7, 1, "a")
	if err != nil {
		t.Fatalf("ошибка ответа: %v", err)
	}
	if result.IsCorrect {
		t.Fatal("неверный ответ распознан как верный")
	}

	if len(repo.answers) != 2 {
		t.Fatalf("ожидались две записанные попытки, есть %d", len(repo.answers))
	}
	if repo.answers[0].UserID != 7 || !repo.answers[0].IsCorrect || repo.answers[1].IsCorrect {
		t.Fatalf("попытки записаны неверно: %+v", repo.answers)
	}
}

func TestAnswerQuestion_InvalidChoice(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusApproved)
	service := NewPracticeService(repo)

	_, err := service.AnswerQuestion(context.Background(), 7, 1, "z")
	if err != ErrInvalidChoice {
		t.Fatalf("ожидалась ErrInvalidChoice, получено: %v", err)
	}
	if len(repo.answers) != 0 {
		t.Fatal("попытка не должна была записаться")
	}
}

func TestNextQuestion_NoneApproved(t *testing.T) {
	repo := newMockQuestionRepo()
	repo.questions[1] = sampleQuestion(1, models.QuestionStatusPending)
	service := NewPracticeService(repo)

	_, err := service.NextQuestion(context.Background())
	if err != repository.ErrNotFound {
		t.Fatalf("ожидалась ErrNotFound, получено: %v", err)
	}
}
