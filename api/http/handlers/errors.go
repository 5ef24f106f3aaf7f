package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/security/jwt"
	"github.com/artem13815/recruit/pkg/vacancy"
)

// writeError maps domain errors onto HTTP statuses. Anything unknown is a
// store failure and its details stay in the logs.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	var (
		vErr vacancy.ErrValidation
		cErr candidate.ErrValidation
		aErr assessment.ErrValidation
	)
	switch {
	case errors.As(err, &vErr), errors.As(err, &cErr), errors.As(err, &aErr):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, vacancy.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Vaga não encontrada.")
	case errors.Is(err, candidate.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Candidato não encontrado.")
	case errors.Is(err, assessment.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Avaliação não encontrada, já respondida ou expirada.")
	case errors.Is(err, assessment.ErrResultNotFound):
		return presenter.Error(c, http.StatusNotFound, "Resultado da avaliação não encontrado.")
	case errors.Is(err, assessment.ErrAlreadyCompleted):
		return presenter.Error(c, http.StatusConflict, "Avaliação já foi respondida.")
	case errors.Is(err, assessment.ErrSubmissionInProgress):
		return presenter.Error(c, http.StatusConflict, "Avaliação em processamento.")
	}
	return presenter.Error(c, http.StatusInternalServerError, fallback)
}

func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "não foi possível identificar o usuário")
}

func currentUser(c *fiber.Ctx) (int64, bool) { return jwt.UserID(c) }

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// candidateRef reads :id and the optional ?source= (upload by default).
func candidateRef(c *fiber.Ctx) (candidate.Ref, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return candidate.Ref{}, false
	}
	src, err := candidate.ParseSource(c.Query("source"))
	if err != nil {
		return candidate.Ref{}, false
	}
	return candidate.Ref{ID: id, Source: src}, true
}
