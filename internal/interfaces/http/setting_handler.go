package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
)

// SettingHandler maneja las claves de configuración de la app (protegido).
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener clave de configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        key  path      string  true  "Clave (ej. initial_capital)"
// @Success      200  {object}  dto.SettingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [get]
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	out, err := h.uc.Get(key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clave no configurada"})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Crear o actualizar clave de configuración
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetSettingRequest  true  "key, value"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [post]
func (h *SettingHandler) Set(c *fiber.Ctx) error {
	var in dto.SetSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Set(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
