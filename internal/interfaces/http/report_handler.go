package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/reports"
)

// ReportHandler genera reportes descargables (protegido).
type ReportHandler struct {
	cashflowReport *reports.CashflowReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(cashflowReport *reports.CashflowReportUseCase) *ReportHandler {
	return &ReportHandler{cashflowReport: cashflowReport}
}

// CashflowPDF godoc
// @Summary      Reporte de caja en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/cashflow [get]
func (h *ReportHandler) CashflowPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.cashflowReport.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-caja.pdf"`)
	return c.Send(pdfBytes)
}
