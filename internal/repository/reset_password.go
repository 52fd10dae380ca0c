package repository

import (
	"context"
	"errors"
	"time"

	"examly/internal/logger"
	"examly/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ResetPasswordRepository struct {
	db *pgxpool.Pool
}

func NewResetPasswordRepository(db *pgxpool.Pool) *ResetPasswordRepository {
	return &ResetPasswordRepository{db: db}
}

// Upsert создаёт запрос восстановления или перезаписывает существующий —
// на пользователя всегда не больше одной живой записи.
// Коллизия по коду (уникальный индекс на code) возвращается как ErrCodeTaken.
func (r *ResetPasswordRepository) Upsert(ctx context.Context, userID int, code string, validUntil time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reset_password_requests (user_id, code, valid_until)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET code = EXCLUDED.code, valid_until = EXCLUDED.valid_until, updated_at = now()
	`, userID, code, validUntil)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCodeTaken
		}
		logger.Log.Error("Ошибка upsert запроса восстановления (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

func (r *ResetPasswordRepository) GetByCode(ctx context.Context, code string) (*models.ResetPasswordRequest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, code, valid_until, created_at, updated_at
		FROM reset_password_requests
		WHERE code = $1
	`, code)
	return scanResetRequest(row)
}

func (r *ResetPasswordRepository) GetByID(ctx context.Context, id int) (*models.ResetPasswordRequest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, code, valid_until, created_at, updated_at
		FROM reset_password_requests
		WHERE id = $1
	`, id)
	return scanResetRequest(row)
}

func (r *ResetPasswordRepository) DeleteByID(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reset_password_requests WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления запроса восстановления (repo)", zap.Error(err), zap.Int("id", id))
	}
	return err
}

func scanResetRequest(row pgx.Row) (*models.ResetPasswordRequest, error) {
	var req models.ResetPasswordRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Code, &req.ValidUntil, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}
