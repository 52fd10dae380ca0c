package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"examly/internal/logger"
	"examly/internal/middleware"
	"examly/internal/models"
	"examly/internal/repository"
	"examly/internal/services"
	helpers "examly/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

type reviewPageResponse struct {
	Question *models.Question         `json:"question"`
	Reviews  []*models.QuestionReview `json:"reviews"`
}

type verdictRequest struct {
	Verdict string `json:"verdict"`
	Comment string `json:"comment"`
}

// ListPending godoc
// @Summary Вопросы, ожидающие ревью
// @Tags admin
// @Produce json
// @Param page query int false "Страница (с 1)"
// @Param page_size query int false "Размер страницы"
// @Success 200 {array} models.Question
// @Failure 403 {string} string "Доступ запрещён"
// @Router /api/admin/review [get]
func (h *ReviewHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	questions, total, err := h.svc.ListPending(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Сбой при выборке вопросов на ревью", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetQuestion godoc
// @Summary Вопрос с историей вердиктов
// @Tags admin
// @Produce json
// @Param id path int true "ID вопроса"
// @Success 200 {object} reviewPageResponse
// @Failure 404 {string} string "Вопрос не найден"
// @Router /api/admin/review/{id} [get]
func (h *ReviewHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный id вопроса")
		return
	}

	q, reviews, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Вопрос не найден")
			return
		}
		logger.WithCtx(r.Context()).Error("Сбой при получении вопроса", zap.Error(err), zap.Int("question_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		return
	}

	helpers.JSON(w, http.StatusOK, reviewPageResponse{Question: q, Reviews: reviews})
}

// SubmitVerdict godoc
// @Summary Вердикт по вопросу
// @Description Пишет запись аудита и переводит вопрос в approved или rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID вопроса"
// @Param input body verdictRequest true "Вердикт и комментарий"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Недопустимый вердикт"
// @Failure 404 {string} string "Вопрос не найден"
// @Router /api/admin/review/{id} [post]
func (h *ReviewHandler) SubmitVerdict(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный id вопроса")
		return
	}

	reviewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req verdictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в SubmitVerdict")
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.svc.SubmitVerdict(r.Context(), reviewerID, id, req.Verdict, req.Comment); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVerdict):
			helpers.Error(w, http.StatusBadRequest, "Недопустимый вердикт")
		case errors.Is(err, repository.ErrNotFound):
			helpers.Error(w, http.StatusNotFound, "Вопрос не найден")
		default:
			log.Error("Сбой при записи вердикта", zap.Error(err), zap.Int("question_id", id))
			helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Вердикт записан"})
}
