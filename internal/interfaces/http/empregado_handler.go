package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/application/usecase"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// EmpregadoHandler trata a consulta de empregados importados.
type EmpregadoHandler struct {
	uc *usecase.EmpregadoUseCase
}

// NewEmpregadoHandler constrói o handler injetando o caso de uso.
func NewEmpregadoHandler(uc *usecase.EmpregadoUseCase) *EmpregadoHandler {
	return &EmpregadoHandler{uc: uc}
}

// List godoc
// @Summary      Listar empregados da empresa do token
// @Tags         empregados
// @Produce      json
// @Param        lotacao  query  string  false  "Filtro por lotação exata"
// @Param        q        query  string  false  "Busca em nome e matrícula"
// @Param        limit    query  int     false  "Limite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {object}  dto.EmpregadoListResponse
// @Router       /api/empregados [get]
func (h *EmpregadoHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Context(), repository.EmpregadoFilter{
		EmpresaID: GetEmpresaID(c),
		Lotacao:   c.Query("lotacao"),
		Texto:     c.Query("q"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter empregado por ID
// @Tags         empregados
// @Produce      json
// @Param        id   path  string  true  "ID do empregado"
// @Success      200  {object}  dto.EmpregadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empregados/{id} [get]
func (h *EmpregadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empregado não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || out.EmpresaID != GetEmpresaID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empregado não encontrado"})
	}
	return c.JSON(out)
}

// Relatorio godoc
// @Summary      Relatório de empregados em PDF
// @Tags         empregados
// @Produce      application/pdf
// @Param        lotacao  query  string  false  "Filtro por lotação exata"
// @Param        q        query  string  false  "Busca em nome e matrícula"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empregados/exportar/pdf [get]
func (h *EmpregadoHandler) Relatorio(c *fiber.Ctx) error {
	pdf, err := h.uc.RelatorioPDF(c.Context(), repository.EmpregadoFilter{
		EmpresaID: GetEmpresaID(c),
		Lotacao:   c.Query("lotacao"),
		Texto:     c.Query("q"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="empregados.pdf"`)
	return c.Send(pdf)
}
