package handlers

import (
	"encoding/json"
	"net/http"

	"examly/internal/config"
	"examly/internal/logger"
	"examly/internal/middleware"
	"examly/internal/models"
	"examly/internal/services"
	"examly/internal/utils"
	helpers "examly/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login godoc
// @Summary Авторизация пользователя
// @Description Проверяет email и пароль, ставит сессионную куку.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body services.LoginInput true "Данные для входа"
// @Success 200 {object} models.FormResult
// @Failure 400 {object} models.FormResult "Ошибки по полям"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Сбой при входе", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	if !res.OK {
		helpers.JSON(w, http.StatusBadRequest, res)
		return
	}

	h.setSessionCookie(w, token)
	helpers.JSON(w, http.StatusOK, res)
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя, ставит сессионную куку и отправляет приветственное письмо.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body services.RegisterInput true "Данные регистрации"
// @Success 200 {object} models.FormResult
// @Failure 400 {object} models.FormResult "Ошибки по полям"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Сбой при регистрации", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	if !res.OK {
		helpers.JSON(w, http.StatusBadRequest, res)
		return
	}

	h.setSessionCookie(w, token)
	helpers.JSON(w, http.StatusOK, res)
}

// Logout godoc
// @Summary Выход (сброс сессионной куки)
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		MaxAge:   -1,
	})
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Logged out."})
}

// Profile godoc
// @Summary Данные текущей сессии
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfileResponse
// @Failure 401 {string} string "Не авторизован"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	accent, err := utils.ShiftColor(claims.Color)
	if err != nil {
		// Цвет в токене битый — отдадим как есть
		accent = claims.Color
	}
	isDark, _ := utils.IsColorDark(claims.Color)

	helpers.JSON(w, http.StatusOK, models.UserProfileResponse{
		ID:          claims.UserID,
		Email:       claims.Email,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		Color:       claims.Color,
		AccentColor: accent,
		ColorIsDark: isDark,
		IsAdmin:     claims.IsAdmin,
	})
}

// Кука на весь сайт; срок жизни сессии определяет exp внутри токена.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
}
