package services

import (
	"context"
	"errors"
	"time"

	"examly/internal/logger"
	"examly/internal/models"
	"examly/internal/repository"
	"examly/internal/utils"

	"go.uber.org/zap"
)

const invalidCredentialsMsg = "Invalid email or password"

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error
}

type AuthService struct {
	repo       UserRepo
	notifier   NotificationSender
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(repo UserRepo, notifier NotificationSender, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		notifier:   notifier,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
}

// Login проверяет форму и пароль и выдаёт сессионный токен.
// Не раскрываем, существует ли email: на «нет пользователя» и «неверный
// пароль» клиент получает одно и то же сообщение.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.FormResult, string, error) {
	if fields := validateForm(in); fields != nil {
		return models.FormFail(fields), "", nil
	}
	logger.Log.Info("Попытка входа (service)", zap.String("email", in.Email))

	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Пользователь не найден (service)", zap.String("email", in.Email))
			return models.FormFieldError("email", invalidCredentialsMsg), "", nil
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.Int("user_id", user.ID))
		return models.FormFieldError("email", invalidCredentialsMsg), "", nil
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Log.Error("Ошибка генерации сессионного токена", zap.Error(err))
		return nil, "", err
	}

	logger.Log.Info("Вход выполнен (service)", zap.Int("user_id", user.ID))
	return models.FormSuccess("/"), token, nil
}

// Register создаёт пользователя, выдаёт токен и ставит приветственное письмо
// в очередь. Отправка письма результат регистрации не блокирует.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.FormResult, string, error) {
	if fields := validateForm(in); fields != nil {
		return models.FormFail(fields), "", nil
	}

	if in.Password != in.ConfirmPassword {
		return models.FormFieldError("confirmPassword", "Passwords do not match"), "", nil
	}
	logger.Log.Info("Регистрация пользователя (service)", zap.String("email", in.Email))

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, "", err
	}

	user := &models.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Color:        utils.GenerateColor(),
		PasswordHash: hashed,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			logger.Log.Warn("Email уже зарегистрирован (service)", zap.String("email", in.Email))
			return models.FormFieldError("email", "User already exists"), "", nil
		}
		return nil, "", err
	}

	// Самостоятельная регистрация админа не создаёт
	token, err := s.issueToken(user)
	if err != nil {
		logger.Log.Error("Ошибка генерации сессионного токена", zap.Error(err))
		return nil, "", err
	}

	s.notifier.SendRegisterEmail(user.Email, user.FirstName)

	logger.Log.Info("Пользователь зарегистрирован (service)", zap.Int("user_id", user.ID))
	return models.FormSuccess("/"), token, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.Log.Warn("Пользователь не найден по ID (service)", zap.Int("user_id", id), zap.Error(err))
	}
	return user, err
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	return utils.GenerateSessionToken(s.jwtSecret, models.SessionClaims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Color:     user.Color,
		IsAdmin:   user.IsAdmin,
	}, s.sessionTTL)
}
