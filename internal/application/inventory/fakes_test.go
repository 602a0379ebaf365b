package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// Dobles en memoria de los puertos que tocan stock y libro de inventario.

type memTxRunner struct {
	products *memProductRepo
	sales    *memSaleRepo
	logs     *memLogRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	return fn(r.products, r.sales, r.logs)
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	r.products[id].CurrentStock = stock
	return nil
}

// List pagina en orden estable por ID, como el repo real por created_at.
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Product
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.products[ids[i]])
	}
	return out, nil
}
func (r *memProductRepo) Search(q string, limit int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)              { return nil, nil }
func (r *memProductRepo) Delete(id string) error                                { return nil }

type memSaleRepo struct {
	soldByProduct map[string]decimal.Decimal
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{soldByProduct: make(map[string]decimal.Decimal)}
}

func (r *memSaleRepo) Create(s *entity.Sale) error            { return nil }
func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error { return nil }
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) GetByTransactionID(txID string) (*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) Update(s *entity.Sale) error                          { return nil }
func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error)   { return nil, nil }
func (r *memSaleRepo) UpdateItem(item *entity.SaleItem) error               { return nil }
func (r *memSaleRepo) DeleteItems(saleID string) error                      { return nil }
func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error)       { return nil, nil }
func (r *memSaleRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ListDebtBearingForUpdate(customerID string, code currency.Code) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ListByDateRange(code currency.Code, from, to time.Time) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) TotalSoldQuantity(productID string) (decimal.Decimal, error) {
	return r.soldByProduct[productID], nil
}

type memLogRepo struct {
	logs []*entity.InventoryLog
}

func (r *memLogRepo) Create(l *entity.InventoryLog) error {
	r.logs = append(r.logs, l)
	return nil
}
func (r *memLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memLogRepo) TotalRestocked(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.logs {
		if l.ProductID == productID && l.Action == entity.InventoryActionRestock {
			total = total.Add(l.QuantityChange)
		}
	}
	return total, nil
}
