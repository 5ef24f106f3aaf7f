package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/assessment"
)

// AssessmentHandler serves the public questionnaire pages.
type AssessmentHandler struct {
	uc assessment.UseCase
}

func NewAssessmentHandler(uc assessment.UseCase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

// ByToken открывает анкету по ссылке.
// @Summary Анкета по токену
// @Description Неизвестный, просроченный и уже пройденный токен неразличимы (404).
// @Tags    Анкеты
// @Produce json
// @Param   token path string true "Токен из ссылки"
// @Success 200 {object} assessment.Questionnaire
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /assessments/token/{token} [get]
func (h *AssessmentHandler) ByToken(c *fiber.Ctx) error {
	q, err := h.uc.FetchByToken(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err, "Erro ao buscar dados da avaliação.")
	}
	return presenter.JSON(c, http.StatusOK, q)
}

// @Summary Отправить ответы анкеты
// @Description Повторная отправка отклоняется с 409, сохранённый результат не меняется.
// @Tags    Анкеты
// @Accept  json
// @Produce json
// @Param   id path int true "ID анкеты"
// @Param   input body assessment.Selections true "Прилагательные по шагам"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /assessments/{id}/submit [post]
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID da avaliação inválido")
	}
	var sel assessment.Selections
	if err := c.BodyParser(&sel); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	res, err := h.uc.Submit(c.Context(), id, sel.Dedup())
	if err != nil {
		return writeError(c, err, "Não foi possível processar sua avaliação.")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":  true,
		"message":  "Avaliação concluída com sucesso!",
		"resultId": res.ID,
	})
}

// Result is the polling target; analise_ia stays null until the narrative exists.
// @Summary Результат анкеты
// @Tags    Анкеты
// @Produce json
// @Param   id path int true "ID анкеты"
// @Success 200 {object} assessment.Result
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /assessments/{id}/result [get]
func (h *AssessmentHandler) Result(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID da avaliação inválido")
	}
	res, err := h.uc.Result(c.Context(), id)
	if err != nil {
		return writeError(c, err, "Erro ao buscar resultado da avaliação.")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
