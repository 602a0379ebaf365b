package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones del registro de inventario.
const (
	InventoryActionRestock    = "RESTOCK"
	InventoryActionSale       = "SALE"
	InventoryActionAdjustment = "ADJUSTMENT"
)

// InventoryLog es una entrada append-only del libro de inventario: una por
// cada mutación de stock, con el antes/después capturado. Nunca se edita ni
// se borra en operación normal; la utilidad de reconciliación la usa para
// detectar y reparar desvíos.
type InventoryLog struct {
	ID             string
	ProductID      string
	Action         string
	QuantityChange decimal.Decimal // positivo en RESTOCK, negativo en SALE
	OldQuantity    decimal.Decimal
	NewQuantity    decimal.Decimal
	RelatedSaleID  *string // referencia a la venta que originó la salida
	UserID         *string // nil = ajuste del sistema
	Notes          string
	CreatedAt      time.Time
}
