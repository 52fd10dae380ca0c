package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound — запись не найдена (обёртка над pgx.ErrNoRows).
	ErrNotFound = errors.New("запись не найдена")
	// ErrEmailTaken — нарушен уникальный индекс users(email).
	ErrEmailTaken = errors.New("email уже зарегистрирован")
	// ErrCodeTaken — нарушен уникальный индекс reset_password_requests(code).
	// Сервис обрабатывает это повторной генерацией кода.
	ErrCodeTaken = errors.New("код восстановления уже занят")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
