package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/candidate"
)

const uploadField = "curriculumFiles"

type CandidateHandler struct {
	uc          candidate.UseCase
	assessments assessment.UseCase
	maxBytes    int64
}

func NewCandidateHandler(uc candidate.UseCase, assessments assessment.UseCase, maxBytes int) *CandidateHandler {
	if maxBytes <= 0 {
		maxBytes = candidate.DefaultMaxFileBytes
	}
	return &CandidateHandler{uc: uc, assessments: assessments, maxBytes: int64(maxBytes)}
}

// Upload принимает пачку резюме для одной вакансии.
// @Summary Загрузить резюме
// @Description PDF/DOCX до лимита на файл; один слишком большой файл отклоняет всю пачку.
// @Tags        Кандидаты
// @Accept      multipart/form-data
// @Produce     json
// @Param       jobId formData int true "ID вакансии"
// @Param       curriculumFiles formData file true "Файлы резюме"
// @Security    BearerAuth
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /candidates/upload [post]
func (h *CandidateHandler) Upload(c *fiber.Ctx) error {
	uid, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, err := strconv.ParseInt(c.FormValue("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "Vaga, usuário e arquivos de currículo são obrigatórios.")
	}
	form, err := c.MultipartForm()
	if err != nil || len(form.File[uploadField]) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "Vaga, usuário e arquivos de currículo são obrigatórios.")
	}

	headers := form.File[uploadField]
	files := make([]candidate.UploadFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > h.maxBytes {
			return presenter.Error(c, http.StatusBadRequest,
				fmt.Sprintf("O arquivo '%s' é muito grande. O limite é de %dMB.", fh.Filename, h.maxBytes>>20))
		}
		f, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "não foi possível ler o arquivo enviado")
		}
		data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
		_ = f.Close()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "não foi possível ler o arquivo enviado")
		}
		files = append(files, candidate.UploadFile{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	created, err := h.uc.UploadResumes(c.Context(), uid, jobID, files)
	if err != nil {
		return writeError(c, err, "Falha ao fazer upload dos currículos.")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success":       true,
		"message":       fmt.Sprintf("%d currículo(s) enviado(s) para análise!", len(created)),
		"newCandidates": created,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// @Summary Сменить статус кандидата
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id path int true "ID кандидата"
// @Param   source query string false "upload | chat"
// @Param   input body updateStatusRequest true "Triagem, Entrevista, Aprovado или Reprovado"
// @Security BearerAuth
// @Success 200 {object} candidate.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/status [patch]
func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	ref, ok := candidateRef(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID do candidato inválido")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return presenter.Error(c, http.StatusBadRequest, "ID do candidato e status são obrigatórios.")
	}
	rec, err := h.uc.UpdateStatus(c.Context(), ref, req.Status)
	if err != nil {
		return writeError(c, err, "Não foi possível atualizar o status do candidato.")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// @Summary Выдать поведенческую анкету
// @Description Возвращает одноразовую публичную ссылку, действующую 30 дней.
// @Tags    Кандидаты
// @Produce json
// @Param   id path int true "ID кандидата"
// @Param   source query string false "upload | chat"
// @Security BearerAuth
// @Success 201 {object} assessment.Issued
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/assessments [post]
func (h *CandidateHandler) CreateAssessment(c *fiber.Ctx) error {
	ref, ok := candidateRef(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID do candidato inválido")
	}
	issued, err := h.assessments.Create(c.Context(), ref)
	if err != nil {
		return writeError(c, err, "Não foi possível criar o link da avaliação.")
	}
	return presenter.JSON(c, http.StatusCreated, issued)
}

// @Summary Поведенческий профиль кандидата
// @Description Результат первой анкеты кандидата; null, если её ещё нет.
// @Tags    Кандидаты
// @Produce json
// @Param   id path int true "ID кандидата"
// @Param   source query string false "upload | chat"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /candidates/{id}/behavioral-profile [get]
func (h *CandidateHandler) BehavioralProfile(c *fiber.Ctx) error {
	ref, ok := candidateRef(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "ID do candidato é obrigatório.")
	}
	profile, err := h.assessments.CandidateProfile(c.Context(), ref)
	if err != nil {
		return writeError(c, err, "Não foi possível buscar o perfil comportamental.")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": profile})
}
