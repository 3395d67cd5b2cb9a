package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unisafe/unisafe-api/internal/application/analytics"
	"github.com/unisafe/unisafe-api/internal/application/dto"
)

// DashboardHandler trata o painel de agregados e a administração do cache.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler do dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Agregados do painel inicial (com cache)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CacheStatus godoc
// @Summary      Estado do cache de agregados (admin)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.CacheStatusResponse
// @Router       /api/cache [get]
func (h *DashboardHandler) CacheStatus(c *fiber.Ctx) error {
	return c.JSON(h.uc.CacheStatus())
}

// ClearCache godoc
// @Summary      Limpar o cache de agregados (admin)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/cache [delete]
func (h *DashboardHandler) ClearCache(c *fiber.Ctx) error {
	removidas := h.uc.LimparCache(c.Context(), GetEmpresaID(c), GetUserID(c))
	return c.JSON(fiber.Map{"entradas_removidas": removidas})
}
