package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/application/usecase"
)

// AuditHandler trata a consulta do log de auditoria.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler constrói o handler de auditoria.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar o log de auditoria da empresa do token (admin)
// @Tags         auditoria
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AuditLogListResponse
// @Router       /api/logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Context(), GetEmpresaID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
