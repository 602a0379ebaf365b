package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

const testUserID = "user-1"

func newRestockFixture(products ...*entity.Product) (*inventory.RestockUseCase, *memProductRepo, *memLogRepo) {
	productRepo := newMemProductRepo(products...)
	logs := &memLogRepo{}
	runner := &memTxRunner{products: productRepo, sales: newMemSaleRepo(), logs: logs}
	return inventory.NewRestockUseCase(runner, logs), productRepo, logs
}

func TestRestock_SumaStockYAsientaEnElLibro(t *testing.T) {
	uc, products, logs := newRestockFixture(&entity.Product{
		ID:           "prod-1",
		SellingUnit:  entity.UnitPiece,
		CurrentStock: decimal.NewFromInt(10),
		IsActive:     true,
	})

	resp, err := uc.Restock(context.Background(), "prod-1", testUserID, dto.RestockRequest{
		Quantity: decimal.NewFromInt(25),
		Notes:    "pedido proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InventoryActionRestock, resp.Action)
	assert.True(t, decimal.NewFromInt(10).Equal(resp.OldQuantity))
	assert.True(t, decimal.NewFromInt(35).Equal(resp.NewQuantity))

	p, _ := products.GetByID("prod-1")
	assert.True(t, decimal.NewFromInt(35).Equal(p.CurrentStock))
	require.Len(t, logs.logs, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(logs.logs[0].QuantityChange))
}

func TestRestock_MeterAdmiteFracciones(t *testing.T) {
	uc, products, _ := newRestockFixture(&entity.Product{
		ID:          "cable-1",
		SellingUnit: entity.UnitMeter,
		IsActive:    true,
	})

	_, err := uc.Restock(context.Background(), "cable-1", testUserID, dto.RestockRequest{
		Quantity: decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)

	p, _ := products.GetByID("cable-1")
	assert.True(t, decimal.RequireFromString("12.5").Equal(p.CurrentStock))
}

func TestRestock_PieceRechazaFracciones(t *testing.T) {
	uc, _, logs := newRestockFixture(&entity.Product{
		ID:          "prod-1",
		SellingUnit: entity.UnitPiece,
		IsActive:    true,
	})

	_, err := uc.Restock(context.Background(), "prod-1", testUserID, dto.RestockRequest{
		Quantity: decimal.RequireFromString("2.5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, logs.logs)
}

func TestRestock_CantidadNoPositiva_Rechazada(t *testing.T) {
	uc, _, _ := newRestockFixture(&entity.Product{ID: "prod-1", SellingUnit: entity.UnitPiece})

	_, err := uc.Restock(context.Background(), "prod-1", testUserID, dto.RestockRequest{
		Quantity: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRestock_ProductoInexistente(t *testing.T) {
	uc, _, _ := newRestockFixture()

	_, err := uc.Restock(context.Background(), "no-existe", testUserID, dto.RestockRequest{
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
