package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zackv/zvshop-api/internal/domain/entity"
)

func pieceProduct() *entity.Product {
	return &entity.Product{SellingUnit: entity.UnitPiece}
}

func meterProduct(minLength string) *entity.Product {
	min := decimal.RequireFromString(minLength)
	return &entity.Product{SellingUnit: entity.UnitMeter, MinSaleLength: &min}
}

func TestValidateQuantity_PieceExigeEnteros(t *testing.T) {
	p := pieceProduct()

	assert.True(t, p.ValidateQuantity(decimal.NewFromInt(1)))
	assert.True(t, p.ValidateQuantity(decimal.NewFromInt(7)))

	assert.False(t, p.ValidateQuantity(decimal.RequireFromString("1.5")),
		"PIECE no admite fracciones")
	assert.False(t, p.ValidateQuantity(decimal.Zero))
	assert.False(t, p.ValidateQuantity(decimal.NewFromInt(-2)))
}

func TestValidateQuantity_MeterAdmiteFracciones(t *testing.T) {
	p := meterProduct("0.5")

	assert.True(t, p.ValidateQuantity(decimal.RequireFromString("0.5")))
	assert.True(t, p.ValidateQuantity(decimal.RequireFromString("2.75")))

	assert.False(t, p.ValidateQuantity(decimal.RequireFromString("0.25")),
		"METER respeta el largo mínimo por venta")
	assert.False(t, p.ValidateQuantity(decimal.Zero))
}

func TestValidateQuantity_MeterSinMinimo(t *testing.T) {
	p := &entity.Product{SellingUnit: entity.UnitMeter}
	assert.True(t, p.ValidateQuantity(decimal.RequireFromString("0.1")))
}

func TestIsLowStock(t *testing.T) {
	p := &entity.Product{
		CurrentStock:  decimal.NewFromInt(3),
		LowStockLimit: decimal.NewFromInt(5),
	}
	assert.True(t, p.IsLowStock())

	p.CurrentStock = decimal.NewFromInt(5)
	assert.True(t, p.IsLowStock(), "el umbral es inclusivo")

	p.CurrentStock = decimal.NewFromInt(6)
	assert.False(t, p.IsLowStock())
}
