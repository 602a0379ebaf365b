package repository

import (
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto del libro mayor de inventario.
// El libro es append-only: no hay Update ni Delete.
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error)
	// TotalRestocked suma los quantity_change de las entradas RESTOCK del
	// producto. Junto con SaleRepository.TotalSoldQuantity forma el stock
	// esperado de la reconciliación.
	TotalRestocked(productID string) (decimal.Decimal, error)
}
