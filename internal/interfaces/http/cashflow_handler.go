package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
)

// CashflowHandler maneja las transacciones de caja (protegido).
type CashflowHandler struct {
	uc *usecase.CashflowUseCase
}

// NewCashflowHandler construye el handler.
func NewCashflowHandler(uc *usecase.CashflowUseCase) *CashflowHandler {
	return &CashflowHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción de caja
// @Tags         cashflows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashflowRequest  true  "type (income|expense), amount, category, description"
// @Success      201   {object}  dto.CashflowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashflows [post]
func (h *CashflowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashflowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transacciones de caja
// @Tags         cashflows
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CashflowResponse
// @Router       /api/cashflows [get]
func (h *CashflowHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
