package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
)

// Sale es la venta en exactamente una moneda. Todos los montos están en la
// moneda de la venta. Para ETB, ExchangeRateAtSale guarda la tasa USD→ETB
// congelada al crearse; nunca se recalcula después (en el resto de monedas
// queda en cero y se ignora).
type Sale struct {
	ID                 string
	TransactionID      string // token opaco único (UUID)
	Currency           currency.Code
	CustomerID         *string // nil = venta anónima (solo si no hay deuda)
	UserID             *string // operador que registró la venta
	TotalAmount        decimal.Decimal
	AmountPaid         decimal.Decimal
	DebtAmount         decimal.Decimal // derivado: max(0, total - pagado)
	ExchangeRateAtSale decimal.Decimal
	IsCompleted        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RecalcDebt recalcula el monto adeudado. Debe invocarse antes de cada
// persistencia: DebtAmount es siempre derivado, nunca se asigna directo.
func (s *Sale) RecalcDebt() {
	debt := s.TotalAmount.Sub(s.AmountPaid)
	if debt.IsNegative() {
		debt = decimal.Zero
	}
	s.DebtAmount = debt
}

// Overpayment devuelve el excedente pagado sobre el total (cero si no lo hay).
func (s *Sale) Overpayment() decimal.Decimal {
	over := s.AmountPaid.Sub(s.TotalAmount)
	if over.IsNegative() {
		return decimal.Zero
	}
	return over
}

// SaleItem es una línea de venta. UnitPrice y TotalPrice están en la moneda
// de la venta; TotalPrice = Quantity × UnitPrice.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
