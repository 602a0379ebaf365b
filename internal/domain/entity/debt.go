package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
)

// DebtPayment es el registro inmutable de un pago de deuda recibido, en la
// moneda en que se recibió. La asignación del pago a ventas pendientes la
// hace el reconciliador; este registro solo deja constancia del dinero.
type DebtPayment struct {
	ID         string
	CustomerID string
	Currency   currency.Code
	Amount     decimal.Decimal
	UserID     *string
	Notes      string
	CreatedAt  time.Time
}

// DebtCorrection es el registro inmutable de una corrección manual de deuda:
// antes/después, ajuste derivado y motivo obligatorio. Es la válvula de escape
// para reparar desvíos entre el saldo agregado del cliente y la suma de
// deudas por venta; no es una operación de camino normal.
type DebtCorrection struct {
	ID            string
	CustomerID    string
	Currency      currency.Code
	OldDebtAmount decimal.Decimal
	NewDebtAmount decimal.Decimal
	Adjustment    decimal.Decimal // new - old
	Reason        string
	UserID        *string
	CreatedAt     time.Time
}
