package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest entrada para abonar deuda de un cliente.
// El abono se reparte entre las ventas con deuda, la más vieja primero.
type RecordPaymentRequest struct {
	Currency string          `json:"currency" validate:"required,oneof=USD SOS ETB"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

// PaymentAllocation detalle de cuánto del abono fue a cada venta.
type PaymentAllocation struct {
	SaleID        string          `json:"sale_id"`
	TransactionID string          `json:"transaction_id"`
	Applied       decimal.Decimal `json:"applied"`
	RemainingDebt decimal.Decimal `json:"remaining_debt"`
}

// RecordPaymentResponse resultado de un abono.
type RecordPaymentResponse struct {
	PaymentID     string              `json:"payment_id"`
	CustomerID    string              `json:"customer_id"`
	Currency      string              `json:"currency"`
	Amount        decimal.Decimal     `json:"amount"`
	Allocations   []PaymentAllocation `json:"allocations"`
	RemainingDebt decimal.Decimal     `json:"remaining_debt"`
}

// CorrectDebtRequest entrada para fijar la deuda de un cliente a mano.
// Reason es obligatorio: toda corrección queda en el diario.
type CorrectDebtRequest struct {
	Currency  string          `json:"currency" validate:"required,oneof=USD SOS ETB"`
	NewAmount decimal.Decimal `json:"new_amount"`
	Reason    string          `json:"reason" validate:"required,min=3"`
}

// DebtCorrectionResponse una entrada del diario de correcciones.
type DebtCorrectionResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Currency      string          `json:"currency"`
	OldDebtAmount decimal.Decimal `json:"old_debt_amount"`
	NewDebtAmount decimal.Decimal `json:"new_debt_amount"`
	Adjustment    decimal.Decimal `json:"adjustment"`
	Reason        string          `json:"reason"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DebtPaymentResponse un abono registrado.
type DebtPaymentResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
}
