package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

// SalesTotals agrega ventas de un periodo en una moneda.
type SalesTotals struct {
	Currency   currency.Code
	SaleCount  int64
	Revenue    decimal.Decimal
	Collected  decimal.Decimal
	DebtIssued decimal.Decimal
}

// ProfitRow es el insumo crudo del desglose de ganancia: venta, renglón
// y producto en una sola fila. El cálculo en sí vive en domain/profit.
type ProfitRow struct {
	Sale    entity.Sale
	Item    entity.SaleItem
	Product entity.Product
}

// DebtTotals agrega la deuda pendiente por moneda sobre todos los clientes.
type DebtTotals struct {
	Currency currency.Code
	Total    decimal.Decimal
	Debtors  int64
}

// ReportRepository define las consultas de solo lectura del dashboard.
type ReportRepository interface {
	SalesTotals(ctx context.Context, code currency.Code, from, to time.Time) (*SalesTotals, error)
	ProfitRows(ctx context.Context, from, to time.Time) ([]*ProfitRow, error)
	DebtTotals(ctx context.Context) ([]*DebtTotals, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]*TopProduct, error)
}

// TopProduct es una fila del ranking de productos más vendidos.
type TopProduct struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	RevenueUSD  decimal.Decimal
}
