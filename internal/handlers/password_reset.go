package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"examly/internal/logger"
	"examly/internal/services"
	helpers "examly/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PasswordResetHandler struct {
	svc *services.PasswordResetService
}

func NewPasswordResetHandler(svc *services.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

// Forgot godoc
// @Summary Запрос кода восстановления пароля
// @Description Отправляет письмо с пятизначным кодом. Повторный запрос перезаписывает прежний код.
// @Tags password
// @Accept json
// @Produce json
// @Param input body services.ForgotInput true "Email пользователя"
// @Success 200 {object} models.FormResult
// @Failure 400 {object} models.FormResult "Ошибки по полям"
// @Router /api/password/forgot [post]
func (h *PasswordResetHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req services.ForgotInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Forgot")
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, err := h.svc.RequestReset(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrCodeCollision) {
			log.Warn("Коллизия кода восстановления не разрешилась", zap.String("email_masked", maskEmail(req.Email)))
			helpers.Error(w, http.StatusServiceUnavailable, "Попробуйте ещё раз")
			return
		}
		log.Error("Сбой при запросе восстановления пароля", zap.String("email_masked", maskEmail(req.Email)), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	if !res.OK {
		helpers.JSON(w, http.StatusBadRequest, res)
		return
	}

	log.Info("Запрошено восстановление пароля", zap.String("email_masked", maskEmail(req.Email)))
	helpers.JSON(w, http.StatusOK, res)
}

// Verify godoc
// @Summary Проверка кода восстановления
// @Description По валидному коду возвращает редирект с id запроса — код дальше не передаётся.
// @Tags password
// @Accept json
// @Produce json
// @Param input body services.VerifyCodeInput true "Код из письма"
// @Success 200 {object} models.FormResult
// @Failure 400 {object} models.FormResult "Неверный или просроченный код"
// @Router /api/password/verify [post]
func (h *PasswordResetHandler) Verify(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req services.VerifyCodeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Verify")
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, err := h.svc.VerifyCode(r.Context(), req)
	if err != nil {
		log.Error("Сбой при проверке кода восстановления", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	if !res.OK {
		helpers.JSON(w, http.StatusBadRequest, res)
		return
	}

	helpers.JSON(w, http.StatusOK, res)
}

// Apply godoc
// @Summary Установка нового пароля
// @Description Ставит новый пароль по id запроса восстановления из маршрута. Запрос после этого удаляется.
// @Tags password
// @Accept json
// @Produce json
// @Param id path int true "ID запроса восстановления"
// @Param input body services.ApplyPasswordInput true "Новый пароль"
// @Success 200 {object} models.FormResult
// @Failure 400 {object} models.FormResult "Ошибки по полям"
// @Router /api/password/reset/{id} [post]
func (h *PasswordResetHandler) Apply(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	requestID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный id запроса")
		return
	}

	var req services.ApplyPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Apply")
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, err := h.svc.ApplyNewPassword(r.Context(), requestID, req)
	if err != nil {
		log.Error("Сбой при сбросе пароля", zap.Error(err), zap.Int("request_id", requestID))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	if !res.OK {
		helpers.JSON(w, http.StatusBadRequest, res)
		return
	}

	log.Info("Пароль успешно сброшен", zap.Int("request_id", requestID))
	helpers.JSON(w, http.StatusOK, res)
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
