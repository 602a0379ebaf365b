package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de unidad de venta.
const (
	UnitPiece = "PIECE" // unidades discretas: cantidad entera >= 1
	UnitMeter = "METER" // unidades continuas (cable, manguera): admite fracciones
)

// Product representa un producto del catálogo. PurchasePrice y SellingPrice se
// guardan siempre en USD; SellingPrice actúa como precio piso: ninguna línea
// de venta puede quedar por debajo de él (convertido a la moneda de la venta).
type Product struct {
	ID            string
	Name          string
	Brand         string
	CategoryID    string
	PurchasePrice decimal.Decimal // costo de compra (USD)
	SellingPrice  decimal.Decimal // precio mínimo de venta (USD)
	SellingUnit   string          // PIECE o METER
	CurrentStock  decimal.Decimal // decimal: los METER se venden fraccionados
	LowStockLimit decimal.Decimal
	MinSaleLength *decimal.Decimal // solo METER: largo mínimo por venta
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el stock está en o por debajo del umbral configurado.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.LowStockLimit)
}

// ValidateQuantity valida una cantidad de venta según el tipo de unidad:
// PIECE exige enteros >= 1; METER exige cumplir el largo mínimo si existe.
func (p *Product) ValidateQuantity(qty decimal.Decimal) bool {
	if !qty.GreaterThan(decimal.Zero) {
		return false
	}
	switch p.SellingUnit {
	case UnitMeter:
		if p.MinSaleLength != nil && qty.LessThan(*p.MinSaleLength) {
			return false
		}
		return true
	default:
		// PIECE (y cualquier valor legado) se trata como discreto.
		return qty.IsInteger() && qty.GreaterThanOrEqual(decimal.NewFromInt(1))
	}
}
