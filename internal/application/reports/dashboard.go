package reports

import (
	"context"
	"time"

	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/profit"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del día: ventas por moneda, desglose de
// ganancia en USD, deuda pendiente y ranking de productos. Solo lectura.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	calculator *profit.Calculator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, calculator *profit.Calculator) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, calculator: calculator}
}

// saleGroup reúne las líneas de una misma venta para el cálculo de ganancia.
type saleGroup struct {
	sale  *entity.Sale
	lines []profit.Line
}

// Summary calcula los KPIs del día indicado (00:00 a 24:00 hora local).
func (uc *DashboardUseCase) Summary(ctx context.Context, day time.Time) (*dto.DashboardSummaryDTO, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	out := &dto.DashboardSummaryDTO{
		DateLabel: from.Format("2006-01-02"),
	}

	// Ventas del día, una fila por moneda (los silos no se mezclan).
	for _, code := range currency.All() {
		totals, err := uc.reportRepo.SalesTotals(ctx, code, from, to)
		if err != nil {
			return nil, err
		}
		if totals == nil || totals.SaleCount == 0 {
			continue
		}
		out.Today = append(out.Today, dto.CurrencySummaryDTO{
			Currency:   code.String(),
			SaleCount:  totals.SaleCount,
			Revenue:    totals.Revenue,
			Collected:  totals.Collected,
			DebtIssued: totals.DebtIssued,
		})
	}

	// Ganancia del día: la descomposición se hace en memoria, con la tasa
	// congelada de cada venta ETB. Las filas se agrupan por venta para que el
	// sobrepago se reparta una sola vez, al centavo. Una fila mala degrada a
	// cero, no tumba el resumen.
	rows, err := uc.reportRepo.ProfitRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var order []string
	grouped := make(map[string]*saleGroup)
	for _, row := range rows {
		g, ok := grouped[row.Sale.ID]
		if !ok {
			g = &saleGroup{sale: &row.Sale}
			grouped[row.Sale.ID] = g
			order = append(order, row.Sale.ID)
		}
		g.lines = append(g.lines, profit.Line{Item: &row.Item, Product: &row.Product})
	}
	for _, id := range order {
		g := grouped[id]
		for _, b := range uc.calculator.SaleProfit(g.sale, g.lines) {
			out.TodayProfit.Base = out.TodayProfit.Base.Add(b.Base)
			out.TodayProfit.Premium = out.TodayProfit.Premium.Add(b.Premium)
			out.TodayProfit.Total = out.TodayProfit.Total.Add(b.Total)
		}
	}

	debts, err := uc.reportRepo.DebtTotals(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range debts {
		out.Debt = append(out.Debt, dto.DebtSummaryDTO{
			Currency: d.Currency.String(),
			Total:    d.Total,
			Debtors:  d.Debtors,
		})
	}

	top, err := uc.reportRepo.TopProducts(ctx, from, to, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Quantity:    t.Quantity,
			RevenueUSD:  t.RevenueUSD,
		})
	}
	return out, nil
}
