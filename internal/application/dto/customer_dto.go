package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateCustomerRequest entrada para actualizar datos del cliente.
// Las deudas no se tocan por aquí: venta, abono o corrección.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// CustomerResponse salida de un cliente con sus tres saldos de deuda.
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Notes            string          `json:"notes,omitempty"`
	DebtUSD          decimal.Decimal `json:"debt_usd"`
	DebtSOS          decimal.Decimal `json:"debt_sos"`
	DebtETB          decimal.Decimal `json:"debt_etb"`
	HasDebt          bool            `json:"has_debt"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
