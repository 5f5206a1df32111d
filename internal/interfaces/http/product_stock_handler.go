package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/stock"
	"github.com/jhoicas/Taller-api/internal/domain"
)

// ProductStockHandler maneja las entradas de stock por ubicación (protegido).
type ProductStockHandler struct {
	ledger *stock.LedgerUseCase
}

// NewProductStockHandler construye el handler.
func NewProductStockHandler(ledger *stock.LedgerUseCase) *ProductStockHandler {
	return &ProductStockHandler{ledger: ledger}
}

// Create godoc
// @Summary      Crear entrada de stock por ubicación
// @Description  Registra el desglose (color, taller) y suma su cantidad al stock
//
//	agregado del producto en la misma transacción.
//
// @Tags         product-stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductStockRequest  true  "product_id, color, quantity, workshop"
// @Success      201   {object}  dto.ProductStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-stock [post]
func (h *ProductStockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.CreateEntry(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas de stock
// @Tags         product-stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {array}   dto.ProductStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product-stock [get]
func (h *ProductStockHandler) List(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "product_id inválido"})
		}
		productID = &id
	}
	out, err := h.ledger.ListEntries(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de stock
// @Tags         product-stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la entrada"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-stock/{id} [get]
func (h *ProductStockHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.ledger.GetEntry(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entrada de stock
// @Description  Actualización parcial. Si cambia la cantidad, la diferencia se
//
//	aplica al stock agregado dentro de una transacción. Cambiar el
//	product_id de una entrada existente se rechaza.
//
// @Tags         product-stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID de la entrada"
// @Param        body  body  dto.UpdateProductStockRequest  true  "color, quantity, workshop"
// @Success      200   {object}  dto.ProductStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-stock/{id} [patch]
func (h *ProductStockHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.UpdateEntry(c.Context(), GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de stock
// @Description  Elimina la entrada y resta su cantidad del stock agregado en la
//
//	misma transacción. Se rechaza si dejaría el stock en negativo.
//
// @Tags         product-stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la entrada"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product-stock/{id} [delete]
func (h *ProductStockHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.ledger.DeleteEntry(c.Context(), GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "entrada eliminada"})
}
