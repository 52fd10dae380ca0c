package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"examly/internal/models"
	"examly/internal/repository"
	"examly/internal/utils"
)

// Мок-репозиторий пользователей (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User
	nextID   int
	lastUser *models.User
	calls    int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	m.calls++
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrEmailTaken
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.calls++
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	m.calls++
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) UpdateUserPassword(_ context.Context, userID int, passwordHash string) error {
	m.calls++
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return errors.New("user not found")
}

// Мок-отправитель писем: только фиксирует вызовы
type mockNotifier struct {
	registerEmails []string
	resetEmails    []string
	resetCodes     []string
}

func (m *mockNotifier) SendRegisterEmail(email, _ string) {
	m.registerEmails = append(m.registerEmails, email)
}

func (m *mockNotifier) SendResetPasswordEmail(email, code string) {
	m.resetEmails = append(m.resetEmails, email)
	m.resetCodes = append(m.resetCodes, code)
}

const testSecret = "test-secret"

func newTestAuthService(repo *mockUserRepo, n *mockNotifier) *AuthService {
	return NewAuthService(repo, n, testSecret, time.Hour)
}

func registerInput() RegisterInput {
	return RegisterInput{
		Email:           "a@x.com",
		FirstName:       "A",
		LastName:        "B",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	repo := newMockUserRepo()
	service := newTestAuthService(repo, &mockNotifier{})

	res, regToken, err := service.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if !res.OK || regToken == "" {
		t.Fatalf("ожидался успех регистрации с токеном, получено: %+v", res)
	}
	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" || repo.lastUser.PasswordHash == "password123" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}

	regClaims, err := utils.ParseSessionToken(testSecret, regToken)
	if err != nil {
		t.Fatalf("токен регистрации не разбирается: %v", err)
	}

	res, loginToken, err := service.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if !res.OK || loginToken == "" {
		t.Fatalf("ожидался успех логина с токеном, получено: %+v", res)
	}

	loginClaims, err := utils.ParseSessionToken(testSecret, loginToken)
	if err != nil {
		t.Fatalf("токен логина не разбирается: %v", err)
	}
	if loginClaims.UserID != regClaims.UserID || loginClaims.Email != regClaims.Email {
		t.Fatalf("идентичность в токенах не совпадает: %+v vs %+v", loginClaims, regClaims)
	}
	if loginClaims.IsAdmin {
		t.Fatal("самостоятельная регистрация не должна давать админа")
	}
}

func TestRegister_SendsWelcomeEmail(t *testing.T) {
	notifier := &mockNotifier{}
	service := newTestAuthService(newMockUserRepo(), notifier)

	_, _, err := service.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if len(notifier.registerEmails) != 1 || notifier.registerEmails[0] != "a@x.com" {
		t.Fatalf("приветственное письмо не поставлено в очередь: %+v", notifier.registerEmails)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	service := newTestAuthService(repo, &mockNotifier{})

	if _, _, err := service.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("ошибка первой регистрации: %v", err)
	}

	res, token, err := service.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("дубликат не должен быть ошибкой транспорта: %v", err)
	}
	if res.OK || token != "" {
		t.Fatal("повторная регистрация не должна быть успешной")
	}
	if got := res.Fields["email"]; len(got) != 1 || got[0] != "User already exists" {
		t.Fatalf("ожидалась ошибка email 'User already exists', получено: %+v", res.Fields)
	}
	if len(repo.users) != 1 {
		t.Fatalf("хранилище изменилось при дубликате: %d пользователей", len(repo.users))
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	repo := newMockUserRepo()
	service := newTestAuthService(repo, &mockNotifier{})

	in := registerInput()
	in.Password = "abcdefgh"
	in.ConfirmPassword = "different"

	res, _, err := service.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("несовпадение паролей не должно быть ошибкой транспорта: %v", err)
	}
	if res.OK {
		t.Fatal("ожидался отказ при несовпадении паролей")
	}
	if got := res.Fields["confirmPassword"]; len(got) != 1 || got[0] != "Passwords do not match" {
		t.Fatalf("ожидалась ошибка confirmPassword, получено: %+v", res.Fields)
	}
	if repo.calls != 0 {
		t.Fatal("хранилище не должно было быть затронуто")
	}
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	repo := newMockUserRepo()
	service := newTestAuthService(repo, &mockNotifier{})

	res, _, err := service.Login(context.Background(), LoginInput{Email: "not-an-email", Password: "password123"})
	if err != nil {
		t.Fatalf("ошибка валидации не должна быть ошибкой транспорта: %v", err)
	}
	if res.OK {
		t.Fatal("ожидался отказ по формату email")
	}
	if _, ok := res.Fields["email"]; !ok {
		t.Fatalf("ожидалась ошибка по полю email, получено: %+v", res.Fields)
	}
	if repo.calls != 0 {
		t.Fatal("валидация должна отсекать запрос до обращения к хранилищу")
	}
}

func TestLogin_UnknownEmailAndWrongPassword_SameMessage(t *testing.T) {
	repo := newMockUserRepo()
	service := newTestAuthService(repo, &mockNotifier{})

	if _, _, err := service.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	resUnknown, _, err := service.Login(context.Background(), LoginInput{Email: "other@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	resWrong, _, err := service.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrongpass123"})
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	if resUnknown.OK || resWrong.OK {
		t.Fatal("ожидались отказы")
	}
	// Существование email не раскрываем: сообщение одно и то же
	if resUnknown.Fields["email"][0] != "Invalid email or password" ||
		resWrong.Fields["email"][0] != "Invalid email or password" {
		t.Fatalf("сообщения различаются: %+v vs %+v", resUnknown.Fields, resWrong.Fields)
	}
}
