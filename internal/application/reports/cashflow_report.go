// Package reports genera reportes descargables a partir de los datos de caja.
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CashflowPDFGenerator puerto de generación del PDF (lo implementa
// pdf.MarotoReportGenerator).
type CashflowPDFGenerator interface {
	GenerateCashflowPDF(ctx context.Context, rows []*entity.Cashflow, totalIncome, totalExpense decimal.Decimal) ([]byte, error)
}

// CashflowReportUseCase arma el reporte de caja en PDF.
type CashflowReportUseCase struct {
	cashflowRepo repository.CashflowRepository
	generator    CashflowPDFGenerator
}

// NewCashflowReportUseCase construye el caso de uso.
func NewCashflowReportUseCase(cashflowRepo repository.CashflowRepository, generator CashflowPDFGenerator) *CashflowReportUseCase {
	return &CashflowReportUseCase{cashflowRepo: cashflowRepo, generator: generator}
}

// Generate lista las transacciones, acumula totales y delega el render.
func (uc *CashflowReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	rows, err := uc.cashflowRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte de caja: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, c := range rows {
		switch c.Type {
		case entity.CashflowTypeIncome:
			totalIncome = totalIncome.Add(c.Amount)
		case entity.CashflowTypeExpense:
			totalExpense = totalExpense.Add(c.Amount)
		}
	}

	return uc.generator.GenerateCashflowPDF(ctx, rows, totalIncome, totalExpense)
}
