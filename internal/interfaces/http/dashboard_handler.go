package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/analytics"
	"github.com/jhoicas/Taller-api/internal/application/dto"
)

// DashboardHandler expone el resumen de la pantalla principal (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Resumen de inventario y caja
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
