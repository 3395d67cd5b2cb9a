package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/application/uploads"
	"github.com/unisafe/unisafe-api/internal/domain"
)

// UploadHandler trata o ciclo upload -> mapeamento -> importação.
type UploadHandler struct {
	uc            *uploads.UseCase
	maxFileSizeMB int
}

// NewUploadHandler constrói o handler de uploads.
func NewUploadHandler(uc *uploads.UseCase, maxFileSizeMB int) *UploadHandler {
	return &UploadHandler{uc: uc, maxFileSizeMB: maxFileSizeMB}
}

// Create godoc
// @Summary      Enviar planilha (.xlsx, .xls ou .csv)
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo de planilha"
// @Success      201   {object}  dto.UploadCriadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' é obrigatório"})
	}
	if h.maxFileSizeMB > 0 && fh.Size > int64(h.maxFileSizeMB)*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "arquivo acima do limite permitido"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "não foi possível ler o arquivo"})
	}

	out, err := h.uc.Criar(c.Context(), GetEmpresaID(c), GetUserID(c), fh.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrFileUnreadable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SaveMapping godoc
// @Summary      Salvar o mapeamento de colunas revisado
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do upload"
// @Param        body  body  dto.SalvarMapeamentoRequest  true  "Mapeamento cabeçalho -> campo canônico"
// @Success      200   {object}  dto.UploadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/uploads/{id}/mapeamento [put]
func (h *UploadHandler) SaveMapping(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SalvarMapeamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SalvarMapeamento(c.Context(), GetEmpresaID(c), GetUserID(c), id, in)
	if err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar o lote com o mapeamento salvo
// @Tags         uploads
// @Produce      json
// @Param        id  path  string  true  "ID do upload"
// @Success      200  {object}  dto.ImportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/uploads/{id}/importar [post]
func (h *UploadHandler) Import(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Importar(c.Context(), GetEmpresaID(c), GetUserID(c), id)
	if err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar uploads da empresa do token
// @Tags         uploads
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UploadListResponse
// @Router       /api/uploads [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.Listar(c.Context(), GetEmpresaID(c), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter upload por ID
// @Tags         uploads
// @Produce      json
// @Param        id   path  string  true  "ID do upload"
// @Success      200  {object}  dto.UploadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uploads/{id} [get]
func (h *UploadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(out)
}

// uploadError traduz os erros do ciclo de uploads para HTTP. O erro de
// mapeamento devolve as mensagens de validação em Details, para a tela de
// revisão exibir uma a uma.
func (h *UploadHandler) uploadError(c *fiber.Ctx, err error) error {
	var em *uploads.ErroMapeamento
	if errors.As(err, &em) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "INVALID_MAPPING",
			Message: "mapeamento de colunas inválido",
			Details: em.Erros,
		})
	}
	switch {
	case errors.Is(err, domain.ErrMappingInvalid):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_MAPPING", Message: err.Error()})
	case errors.Is(err, domain.ErrUploadExpired):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "UPLOAD_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "upload não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
