package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"examly/internal/config"
	"examly/internal/models"
	"examly/internal/repository"
	"examly/internal/services"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.ID = len(s.users) + 1
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) UpdateUserPassword(_ context.Context, _ int, _ string) error {
	return nil
}

type stubNotifier struct{}

func (stubNotifier) SendRegisterEmail(_, _ string)      {}
func (stubNotifier) SendResetPasswordEmail(_, _ string) {}

func newTestAuthHandler() *AuthHandler {
	cfg := &config.Config{SessionCookieName: "examly_session"}
	svc := services.NewAuthService(
		&stubUserRepo{users: make(map[string]*models.User)},
		stubNotifier{},
		"test-secret",
		time.Hour,
	)
	return NewAuthHandler(svc, cfg)
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"email":"a@x.com","firstName":"A","lastName":"B","password":"password123","confirmPassword":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("ожидалась одна кука, получено %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "examly_session" || c.Value == "" {
		t.Fatalf("кука сессии не установлена: %+v", c)
	}
	if !c.HttpOnly || !c.Secure || c.Path != "/" {
		t.Fatalf("флаги куки неверны: HttpOnly=%v Secure=%v Path=%q", c.HttpOnly, c.Secure, c.Path)
	}
}

func TestLogin_ValidationErrorsKeyedByField(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"not-an-email","password":"password123"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("ожидался 400, получен %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("кука не должна ставиться при ошибке валидации")
	}

	var resp struct {
		Data models.FormResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("ответ не разбирается: %v", err)
	}
	if resp.Data.OK {
		t.Fatal("ожидался неуспех")
	}
	if _, ok := resp.Data.Fields["email"]; !ok {
		t.Fatalf("ожидалась ошибка по полю email: %+v", resp.Data.Fields)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 || cookies[0].Value != "" {
		t.Fatalf("кука не сброшена: %+v", cookies)
	}
}
