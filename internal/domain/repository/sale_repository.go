package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y SaleItem.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetByTransactionID(transactionID string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	GetItems(saleID string) ([]*entity.SaleItem, error)
	UpdateItem(item *entity.SaleItem) error
	DeleteItems(saleID string) error
	List(limit, offset int) ([]*entity.Sale, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Sale, error)
	// ListDebtBearingForUpdate devuelve las ventas del cliente en la moneda
	// dada con debt_amount > 0, ordenadas por fecha ascendente (la más vieja
	// primero) y bloqueadas con FOR UPDATE. Es el insumo del abono de deuda.
	ListDebtBearingForUpdate(customerID string, code currency.Code) ([]*entity.Sale, error)
	ListByDateRange(code currency.Code, from, to time.Time) ([]*entity.Sale, error)
	// TotalSoldQuantity suma las cantidades vendidas de un producto en todo
	// el historial. Lo usa la reconciliación de inventario.
	TotalSoldQuantity(productID string) (decimal.Decimal, error)
}
