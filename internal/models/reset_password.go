package models

import "time"

// ResetPasswordRequest — одноразовый код восстановления пароля.
// На пользователя живёт не больше одной записи: повторный запрос
// перезаписывает код и срок (upsert по user_id).
type ResetPasswordRequest struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Code       string    `json:"-"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
