package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockRequest entrada para registrar una reposición de stock.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
}

// InventoryLogResponse una entrada del libro mayor de inventario.
type InventoryLogResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Action         string          `json:"action"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	OldQuantity    decimal.Decimal `json:"old_quantity"`
	NewQuantity    decimal.Decimal `json:"new_quantity"`
	RelatedSaleID  *string         `json:"related_sale_id,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// InventoryLogListResponse historial paginado de un producto.
type InventoryLogListResponse struct {
	Items []InventoryLogResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ReconcileResult resultado de la reconciliación de un producto:
// stock actual contra lo que el libro dice que debería haber.
type ReconcileResult struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	ExpectedStock decimal.Decimal `json:"expected_stock"`
	Drift         decimal.Decimal `json:"drift"`
	Fixed         bool            `json:"fixed"`
}

// ReconcileReportResponse reporte completo de reconciliación.
type ReconcileReportResponse struct {
	CheckedAt time.Time         `json:"checked_at"`
	Drifted   []ReconcileResult `json:"drifted"`
	Total     int               `json:"total"`
}
