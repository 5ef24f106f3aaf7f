package handlers

import (
	"net/http"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/vacancy"
)

type JobHandler struct {
	uc vacancy.UseCase
}

func NewJobHandler(uc vacancy.UseCase) *JobHandler { return &JobHandler{uc: uc} }

type createJobRequest struct {
	Title       string  `json:"titulo"`
	Description string  `json:"descricao"`
	Address     string  `json:"endereco"`
	Required    string  `json:"requisitosObrigatorios"`
	Desired     string  `json:"requisitosDesejaveis"`
	Owners      []int64 `json:"usuario"`
}

// @Summary Создать вакансию
// @Description Автор запроса всегда попадает в список владельцев.
// @Tags        Вакансии
// @Accept      json
// @Produce     json
// @Param       input body createJobRequest true "Данные вакансии"
// @Security    BearerAuth
// @Success     201 {object} vacancy.Job
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	owners := req.Owners
	if !slices.Contains(owners, uid) {
		owners = append(owners, uid)
	}
	job, err := h.uc.Create(c.Context(), vacancy.Job{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Required:    req.Required,
		Desired:     req.Desired,
		Owners:      owners,
	})
	if err != nil {
		return writeError(c, err, "Não foi possível criar a vaga.")
	}
	return presenter.JSON(c, http.StatusCreated, job)
}

type updateJobRequest struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descricao"`
	Address     *string `json:"endereco"`
	Required    *string `json:"requisitosObrigatorios"`
	Desired     *string `json:"requisitosDesejaveis"`
	Owners      []int64 `json:"usuario"`
}

// @Summary Обновить вакансию
// @Description Частичное обновление: отсутствующие поля не меняются.
// @Tags    Вакансии
// @Accept  json
// @Produce json
// @Param   id path int true "ID вакансии"
// @Param   input body updateJobRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} vacancy.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [patch]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID da vaga inválido")
	}
	var req updateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	job, err := h.uc.Update(c.Context(), uid, id, vacancy.Patch{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Required:    req.Required,
		Desired:     req.Desired,
		Owners:      req.Owners,
	})
	if err != nil {
		return writeError(c, err, "Não foi possível atualizar a vaga.")
	}
	return presenter.JSON(c, http.StatusOK, job)
}

// @Summary Удалить вакансию
// @Description Чужая вакансия неотличима от несуществующей (404).
// @Tags    Вакансии
// @Param   id path int true "ID вакансии"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID da vaga inválido")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return writeError(c, err, "Não foi possível excluir a vaga.")
	}
	return c.SendStatus(http.StatusNoContent)
}
