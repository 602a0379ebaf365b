package sales

import (
	"context"

	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Venta, stock, libro de inventario y deuda
// del cliente viven o mueren juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
