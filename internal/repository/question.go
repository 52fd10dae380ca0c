package repository

import (
	"context"
	"errors"

	"examly/internal/logger"
	"examly/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type QuestionRepository struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `
	id, question, choices, explanations, answer, sources, status, created_at, updated_at`

// GetRandomApproved — случайный одобренный вопрос для тренировки.
// ORDER BY random() приемлем: банк вопросов маленький.
func (r *QuestionRepository) GetRandomApproved(ctx context.Context) (*models.Question, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+questionColumns+`
		FROM questions
		WHERE status = $1
		ORDER BY random()
		LIMIT 1
	`, models.QuestionStatusApproved)
	return scanQuestion(row)
}

func (r *QuestionRepository) GetQuestionByID(ctx context.Context, id int) (*models.Question, error) {
	row := r.db.QueryRow(ctx, `SELECT`+questionColumns+` FROM questions WHERE id = $1`, id)
	return scanQuestion(row)
}

func (r *QuestionRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Question, int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+questionColumns+`
		FROM questions
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`, status, limit, offset)
	if err != nil {
		logger.Log.Error("Ошибка выборки вопросов (repo)", zap.Error(err), zap.String("status", status))
		return nil, 0, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM questions WHERE status = $1`, status,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (r *QuestionRepository) SetStatus(ctx context.Context, id int, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE questions SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		logger.Log.Error("Ошибка смены статуса вопроса (repo)", zap.Error(err), zap.Int("question_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) SaveAnswer(ctx context.Context, a *models.Answer) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO answers (user_id, question_id, choice, is_correct)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.UserID, a.QuestionID, a.Choice, a.IsCorrect).Scan(&a.ID, &a.CreatedAt)
}

func (r *QuestionRepository) AddReview(ctx context.Context, rev *models.QuestionReview) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO question_reviews (question_id, reviewer_id, verdict, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rev.QuestionID, rev.ReviewerID, rev.Verdict, rev.Comment).Scan(&rev.ID, &rev.CreatedAt)
}

func (r *QuestionRepository) ListReviews(ctx context.Context, questionID int) ([]*models.QuestionReview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question_id, reviewer_id, verdict, comment, created_at
		FROM question_reviews
		WHERE question_id = $1
		ORDER BY created_at
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.QuestionReview
	for rows.Next() {
		var rev models.QuestionReview
		if err := rows.Scan(&rev.ID, &rev.QuestionID, &rev.ReviewerID, &rev.Verdict, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rev)
	}
	return reviews, rows.Err()
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	err := row.Scan(
		&q.ID,
		&q.Text,
		&q.Choices,
		&q.Explanations,
		&q.Answer,
		&q.Sources,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}
