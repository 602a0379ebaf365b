package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest renglón de una venta entrante.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para registrar una venta.
// Currency decide la tabla de tipo de cambio; para ETB el tipo vigente
// queda congelado en la venta.
type CreateSaleRequest struct {
	Currency   string            `json:"currency" validate:"required,oneof=USD SOS ETB"`
	CustomerID string            `json:"customer_id"`
	AmountPaid decimal.Decimal   `json:"amount_paid"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// EditSaleRequest entrada para corregir una venta existente.
// Los renglones reemplazan por completo a los anteriores.
type EditSaleRequest struct {
	CustomerID *string           `json:"customer_id"`
	AmountPaid decimal.Decimal   `json:"amount_paid"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse renglón de una venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID                 string             `json:"id"`
	TransactionID      string             `json:"transaction_id"`
	Currency           string             `json:"currency"`
	CustomerID         *string            `json:"customer_id,omitempty"`
	CustomerName       string             `json:"customer_name,omitempty"`
	TotalAmount        decimal.Decimal    `json:"total_amount"`
	AmountPaid         decimal.Decimal    `json:"amount_paid"`
	DebtAmount         decimal.Decimal    `json:"debt_amount"`
	ExchangeRateAtSale decimal.Decimal    `json:"exchange_rate_at_sale"`
	IsCompleted        bool               `json:"is_completed"`
	Items              []SaleItemResponse `json:"items"`
	CreatedAt          time.Time          `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
