package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"examly/internal/logger"
	"examly/internal/middleware"
	"examly/internal/repository"
	"examly/internal/services"
	helpers "examly/internal/utils/helpers"

	"go.uber.org/zap"
)

type PracticeHandler struct {
	svc *services.PracticeService
}

func NewPracticeHandler(svc *services.PracticeService) *PracticeHandler {
	return &PracticeHandler{svc: svc}
}

type answerRequest struct {
	QuestionID int    `json:"question_id"`
	Choice     string `json:"choice"`
}

// NextQuestion godoc
// @Summary Случайный вопрос для тренировки
// @Tags practice
// @Produce json
// @Success 200 {object} models.Question
// @Failure 404 {string} string "Нет одобренных вопросов"
// @Router /api/practice/next [get]
func (h *PracticeHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.NextQuestion(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Нет доступных вопросов")
			return
		}
		logger.WithCtx(r.Context()).Error("Сбой при выборе вопроса", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}
	helpers.JSON(w, http.StatusOK, q)
}

// Answer godoc
// @Summary Ответ на вопрос
// @Description Записывает попытку и возвращает правильный вариант с пояснениями.
// @Tags practice
// @Accept json
// @Produce json
// @Param input body answerRequest true "ID вопроса и буква варианта"
// @Success 200 {object} services.AnswerResult
// @Failure 400 {string} string "Недопустимый вариант"
// @Failure 404 {string} string "Вопрос не найден"
// @Router /api/practice/answer [post]
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Answer")
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	result, err := h.svc.AnswerQuestion(r.Context(), userID, req.QuestionID, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			helpers.Error(w, http.StatusNotFound, "Вопрос не найден")
		case errors.Is(err, services.ErrInvalidChoice):
			helpers.Error(w, http.StatusBadRequest, "Недопустимый вариант ответа")
		default:
			log.Error("Сбой при записи ответа", zap.Error(err), zap.Int("question_id", req.QuestionID))
			helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, result)
}
