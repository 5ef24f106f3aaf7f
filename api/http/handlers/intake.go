package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/candidate"
)

// IntakeHandler receives candidates collected by the chat bot.
type IntakeHandler struct {
	uc candidate.UseCase
}

func NewIntakeHandler(uc candidate.UseCase) *IntakeHandler { return &IntakeHandler{uc: uc} }

// @Summary Кандидат из чат-бота
// @Description Поле vaga принимает null, текст или [{id,value}].
// @Tags    Интеграции
// @Accept  json
// @Produce json
// @Param   X-Intake-Key header string true "Общий ключ интеграции"
// @Param   input body candidate.ChatIntake true "Кандидат"
// @Success 201 {object} candidate.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /intake/chat [post]
func (h *IntakeHandler) Chat(c *fiber.Ctx) error {
	var in candidate.ChatIntake
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	rec, err := h.uc.IngestChat(c.Context(), in)
	if err != nil {
		return writeError(c, err, "Não foi possível registrar o candidato.")
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}
