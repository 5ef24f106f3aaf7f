package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/reconcile"
)

// DataHandler serves the recruiter's reconciled view.
type DataHandler struct {
	uc     reconcile.UseCase
	logger *zap.Logger
}

func NewDataHandler(uc reconcile.UseCase, logger *zap.Logger) *DataHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataHandler{uc: uc, logger: logger}
}

// @Summary Вакансии и кандидаты рекрутера
// @Description Кандидаты обоих каналов, связанные с вакансиями пользователя.
// @Tags    Данные
// @Produce json
// @Security BearerAuth
// @Success 200 {object} reconcile.View
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /data [get]
func (h *DataHandler) All(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	view, err := h.uc.ForUser(c.Context(), uid)
	if err != nil {
		h.logger.Error("load recruiter data", zap.Int64("user_id", uid), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "Falha ao carregar dados.")
	}
	return presenter.JSON(c, http.StatusOK, view)
}

// @Summary Сводка для дашборда
// @Tags    Данные
// @Produce json
// @Security BearerAuth
// @Success 200 {object} reconcile.Stats
// @Router  /data/stats [get]
func (h *DataHandler) Stats(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	st, err := h.uc.StatsForUser(c.Context(), uid)
	if err != nil {
		h.logger.Error("load dashboard stats", zap.Int64("user_id", uid), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "Falha ao carregar dados.")
	}
	return presenter.JSON(c, http.StatusOK, st)
}
