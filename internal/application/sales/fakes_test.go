package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia. El txRunner de test
// emula el rollback: si fn falla, el estado de productos, clientes, ventas
// y libro vuelve al del inicio de la transacción.

type memTxRunner struct {
	sales     *memSaleRepo
	products  *memProductRepo
	customers *memCustomerRepo
	logs      *memLogRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	productSnap := snapshotProducts(r.products)
	customerSnap := snapshotCustomers(r.customers)
	saleSnap, itemSnap, orderSnap := snapshotSales(r.sales)
	logSnap := len(r.logs.logs)

	if err := fn(r.sales, r.products, r.customers, r.logs); err != nil {
		r.products.products = productSnap
		r.customers.customers = customerSnap
		r.sales.sales, r.sales.items, r.sales.order = saleSnap, itemSnap, orderSnap
		r.logs.logs = r.logs.logs[:logSnap]
		return err
	}
	return nil
}

func snapshotProducts(r *memProductRepo) map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func snapshotCustomers(r *memCustomerRepo) map[string]*entity.Customer {
	snap := make(map[string]*entity.Customer, len(r.customers))
	for id, c := range r.customers {
		cp := *c
		snap[id] = &cp
	}
	return snap
}

func snapshotSales(r *memSaleRepo) (map[string]*entity.Sale, map[string][]*entity.SaleItem, []string) {
	sales := make(map[string]*entity.Sale, len(r.sales))
	for id, s := range r.sales {
		cp := *s
		sales[id] = &cp
	}
	items := make(map[string][]*entity.SaleItem, len(r.items))
	for id, list := range r.items {
		items[id] = append([]*entity.SaleItem(nil), list...)
	}
	order := append([]string(nil), r.order...)
	return sales, items, order
}

// ── productos ────────────────────────────────────────────────────────────────

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
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error)     { return nil, nil }
func (r *memProductRepo) Search(q string, limit int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)              { return nil, nil }
func (r *memProductRepo) Delete(id string) error                                { return nil }

// ── ventas ───────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem
	order []string // orden de inserción = orden cronológico
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{
		sales: make(map[string]*entity.Sale),
		items: make(map[string][]*entity.SaleItem),
	}
}

func (r *memSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}
func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.items[item.SaleID] = append(r.items[item.SaleID], item)
	return nil
}
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }
func (r *memSaleRepo) GetByTransactionID(txID string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.TransactionID == txID {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSaleRepo) Update(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	return r.items[saleID], nil
}
func (r *memSaleRepo) UpdateItem(item *entity.SaleItem) error { return nil }
func (r *memSaleRepo) DeleteItems(saleID string) error {
	delete(r.items, saleID)
	return nil
}
func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, id := range r.order {
		s := r.sales[id]
		if s.CustomerID != nil && *s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memSaleRepo) ListDebtBearingForUpdate(customerID string, code currency.Code) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, id := range r.order {
		s := r.sales[id]
		if s.CustomerID != nil && *s.CustomerID == customerID &&
			s.Currency == code && s.DebtAmount.GreaterThan(decimal.Zero) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memSaleRepo) ListByDateRange(code currency.Code, from, to time.Time) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) TotalSoldQuantity(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, items := range r.items {
		for _, item := range items {
			if item.ProductID == productID {
				total = total.Add(item.Quantity)
			}
		}
	}
	return total, nil
}

// ── clientes ─────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo(customers ...*entity.Customer) *memCustomerRepo {
	r := &memCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error)     { return nil, nil }
func (r *memCustomerRepo) Search(q string, limit int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) ListWithDebt() ([]*entity.Customer, error)              { return nil, nil }
func (r *memCustomerRepo) Delete(id string) error                                 { return nil }


// ── libro de inventario ──────────────────────────────────────────────────────

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

// ── tasas ────────────────────────────────────────────────────────────────────

type fakeRateProvider struct {
	rates currency.Rates
	err   error
}

func (f *fakeRateProvider) CurrentRates() (currency.Rates, error) {
	return f.rates, f.err
}
