package debt_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// Dobles en memoria de los puertos que tocan abonos y correcciones.

type memTxRunner struct {
	customers   *memCustomerRepo
	sales       *memSaleRepo
	payments    *memPaymentRepo
	corrections *memCorrectionRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.DebtPaymentRepository,
	correctionRepo repository.DebtCorrectionRepository,
) error) error {
	return fn(r.customers, r.sales, r.payments, r.corrections)
}

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

type memSaleRepo struct {
	sales []*entity.Sale // en orden cronológico
}

func (r *memSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}
func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error { return nil }
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSaleRepo) GetByTransactionID(txID string) (*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) Update(s *entity.Sale) error {
	for i, old := range r.sales {
		if old.ID == s.ID {
			r.sales[i] = s
		}
	}
	return nil
}
func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) { return nil, nil }
func (r *memSaleRepo) UpdateItem(item *entity.SaleItem) error             { return nil }
func (r *memSaleRepo) DeleteItems(saleID string) error                    { return nil }
func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error)     { return nil, nil }
func (r *memSaleRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ListDebtBearingForUpdate(customerID string, code currency.Code) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
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
	return decimal.Zero, nil
}

type memPaymentRepo struct {
	payments []*entity.DebtPayment
}

func (r *memPaymentRepo) Create(p *entity.DebtPayment) error {
	r.payments = append(r.payments, p)
	return nil
}
func (r *memPaymentRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtPayment, error) {
	var out []*entity.DebtPayment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCorrectionRepo struct {
	corrections []*entity.DebtCorrection
}

func (r *memCorrectionRepo) Create(c *entity.DebtCorrection) error {
	r.corrections = append(r.corrections, c)
	return nil
}
func (r *memCorrectionRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtCorrection, error) {
	var out []*entity.DebtCorrection
	for _, c := range r.corrections {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}
