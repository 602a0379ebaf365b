package dto

import "github.com/shopspring/decimal"

// CurrencySummaryDTO KPIs de un periodo en una moneda.
type CurrencySummaryDTO struct {
	Currency   string          `json:"currency"`
	SaleCount  int64           `json:"sale_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Collected  decimal.Decimal `json:"collected"`
	DebtIssued decimal.Decimal `json:"debt_issued"`
}

// ProfitSummaryDTO desglose de ganancia del periodo, siempre en USD.
type ProfitSummaryDTO struct {
	Base    decimal.Decimal `json:"base"`
	Premium decimal.Decimal `json:"premium"`
	Total   decimal.Decimal `json:"total"`
}

// DebtSummaryDTO deuda pendiente total en una moneda.
type DebtSummaryDTO struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	Debtors  int64           `json:"debtors"`
}

// TopProductDTO una fila del ranking de productos del periodo.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	RevenueUSD  decimal.Decimal `json:"revenue_usd"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Ventas del día por moneda, desglose de ganancia en USD, deuda
// pendiente por moneda y el Top-5 de productos del día.
type DashboardSummaryDTO struct {
	Today       []CurrencySummaryDTO `json:"today"`
	TodayProfit ProfitSummaryDTO     `json:"today_profit"`
	Debt        []DebtSummaryDTO     `json:"debt"`
	TopProducts []TopProductDTO      `json:"top_products"`
	DateLabel   string               `json:"date_label"`
}
