package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examly/internal/logger"
	"examly/internal/models"
	"examly/internal/repository"
	"examly/internal/utils"

	"go.uber.org/zap"
)

// maxCodeAttempts — сколько раз перегенерировать код при коллизии
// по уникальному индексу на code.
const maxCodeAttempts = 5

// ErrCodeCollision — не удалось подобрать свободный код. Временная ошибка,
// клиенту имеет смысл повторить запрос.
var ErrCodeCollision = errors.New("не удалось сгенерировать уникальный код восстановления")

type ResetPasswordRepo interface {
	Upsert(ctx context.Context, userID int, code string, validUntil time.Time) error
	GetByCode(ctx context.Context, code string) (*models.ResetPasswordRequest, error)
	GetByID(ctx context.Context, id int) (*models.ResetPasswordRequest, error)
	DeleteByID(ctx context.Context, id int) error
}

type PasswordResetService struct {
	repo     ResetPasswordRepo
	users    UserRepo
	notifier NotificationSender
	codeTTL  time.Duration
}

func NewPasswordResetService(repo ResetPasswordRepo, users UserRepo, notifier NotificationSender, codeTTL time.Duration) *PasswordResetService {
	return &PasswordResetService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		codeTTL:  codeTTL,
	}
}

type ForgotInput struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeInput struct {
	Code string `json:"code" validate:"required"`
}

type ApplyPasswordInput struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
}

// RequestReset генерирует пятизначный код, сохраняет его upsert-ом по
// пользователю (повторный запрос перезаписывает прежний код) и ставит письмо
// в очередь. Коллизия кода обрабатывается перегенерацией.
func (s *PasswordResetService) RequestReset(ctx context.Context, in ForgotInput) (*models.FormResult, error) {
	if fields := validateForm(in); fields != nil {
		return models.FormFail(fields), nil
	}
	logger.Log.Info("Запрос восстановления пароля (service)")

	user, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.FormFieldError("email", "User does not exist"), nil
		}
		return nil, err
	}

	validUntil := time.Now().Add(s.codeTTL)

	var code string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code = utils.GenerateResetCode()
		err = s.repo.Upsert(ctx, user.ID, code, validUntil)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrCodeTaken) {
			logger.Log.Error("Ошибка сохранения кода восстановления", zap.Error(err), zap.Int("user_id", user.ID))
			return nil, err
		}
		logger.Log.Warn("Коллизия кода восстановления, перегенерация", zap.Int("user_id", user.ID))
	}
	if err != nil {
		return nil, ErrCodeCollision
	}

	s.notifier.SendResetPasswordEmail(user.Email, code)

	logger.Log.Info("Код восстановления сохранён и поставлен на отправку",
		zap.Int("user_id", user.ID),
		zap.Time("valid_until", validUntil),
	)
	return models.FormSuccess("/"), nil
}

// VerifyCode проверяет код и возвращает редирект с id запроса — дальше код
// по сети не передаётся.
func (s *PasswordResetService) VerifyCode(ctx context.Context, in VerifyCodeInput) (*models.FormResult, error) {
	if fields := validateForm(in); fields != nil {
		return models.FormFail(fields), nil
	}

	req, err := s.repo.GetByCode(ctx, in.Code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Код восстановления не найден (service)")
			return models.FormFieldError("code", "Invalid code"), nil
		}
		return nil, err
	}

	if req.ValidUntil.Before(time.Now()) {
		logger.Log.Warn("Код восстановления просрочен (service)", zap.Int("user_id", req.UserID))
		return models.FormFieldError("code", "Code has expired"), nil
	}

	return models.FormSuccess(fmt.Sprintf("/reset-code/%d", req.ID)), nil
}

// ApplyNewPassword ставит новый пароль по id запроса восстановления
// и удаляет запрос: код одноразовый, повторное применение невозможно.
func (s *PasswordResetService) ApplyNewPassword(ctx context.Context, requestID int, in ApplyPasswordInput) (*models.FormResult, error) {
	if fields := validateForm(in); fields != nil {
		return models.FormFail(fields), nil
	}

	if in.Password != in.ConfirmPassword {
		return models.FormFieldError("confirmPassword", "Passwords do not match"), nil
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Запрос восстановления не найден (service)", zap.Int("request_id", requestID))
			return models.FormFieldError("code", "Invalid code"), nil
		}
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.FormFieldError("code", "Invalid code"), nil
		}
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования нового пароля", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, err
	}

	if err := s.users.UpdateUserPassword(ctx, user.ID, hashed); err != nil {
		logger.Log.Error("Ошибка обновления пароля", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, req.ID); err != nil {
		// Пароль уже сменён — не фейлим, но код останется живым до истечения
		logger.Log.Warn("Не удалось удалить использованный запрос восстановления",
			zap.Error(err), zap.Int("request_id", req.ID))
	}

	logger.Log.Info("Пароль успешно сброшен (service)", zap.Int("user_id", user.ID))
	return &models.FormResult{OK: true}, nil
}
