package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, transaction_id, currency, customer_id, user_id, total_amount,
		amount_paid, debt_amount, exchange_rate_at_sale, is_completed, created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, transaction_id, currency, customer_id, user_id, total_amount, amount_paid, debt_amount, exchange_rate_at_sale, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TransactionID, sale.Currency.String(), sale.CustomerID, sale.UserID,
		sale.TotalAmount, sale.AmountPaid, sale.DebtAmount, sale.ExchangeRateAtSale,
		sale.IsCompleted, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByTransactionID obtiene una venta por su token opaco.
func (r *SaleRepo) GetByTransactionID(transactionID string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE transaction_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, transactionID))
}

// Update actualiza la cabecera de una venta.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET customer_id = $2, total_amount = $3, amount_paid = $4, debt_amount = $5,
			is_completed = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.TotalAmount, sale.AmountPaid, sale.DebtAmount,
		sale.IsCompleted, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// GetItems obtiene los renglones de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, product_id, quantity, unit_price, total_price FROM sale_items WHERE sale_id = $1`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	var out []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// UpdateItem actualiza un renglón.
func (r *SaleRepo) UpdateItem(item *entity.SaleItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sale_items SET quantity = $2, unit_price = $3, total_price = $4 WHERE id = $1`,
		item.ID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update sale item: %w", err)
	}
	return nil
}

// DeleteItems borra todos los renglones de una venta (edición: se reemplazan).
func (r *SaleRepo) DeleteItems(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// List lista ventas recientes paginadas.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByCustomer lista las ventas de un cliente, la más reciente primero.
func (r *SaleRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales by customer: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListDebtBearingForUpdate: ventas con deuda del cliente en la moneda dada,
// la más vieja primero, bloqueadas con FOR UPDATE. Solo dentro de tx.
func (r *SaleRepo) ListDebtBearingForUpdate(customerID string, code currency.Code) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales
		WHERE customer_id = $1 AND currency = $2 AND debt_amount > 0
		ORDER BY created_at ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, customerID, code.String())
	if err != nil {
		return nil, fmt.Errorf("list debt-bearing sales: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByDateRange lista las ventas de una moneda en [from, to).
func (r *SaleRepo) ListByDateRange(code currency.Code, from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales WHERE currency = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, code.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales by date: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// TotalSoldQuantity suma la cantidad vendida de un producto en todo el historial.
func (r *SaleRepo) TotalSoldQuantity(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM sale_items WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total sold: %w", err)
	}
	return total, nil
}

func (r *SaleRepo) scanOne(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var code string
	err := row.Scan(
		&s.ID, &s.TransactionID, &code, &s.CustomerID, &s.UserID, &s.TotalAmount,
		&s.AmountPaid, &s.DebtAmount, &s.ExchangeRateAtSale, &s.IsCompleted,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.Currency = currency.Code(code)
	return &s, nil
}

func (r *SaleRepo) scanAll(rows pgx.Rows) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var code string
		if err := rows.Scan(
			&s.ID, &s.TransactionID, &code, &s.CustomerID, &s.UserID, &s.TotalAmount,
			&s.AmountPaid, &s.DebtAmount, &s.ExchangeRateAtSale, &s.IsCompleted,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Currency = currency.Code(code)
		out = append(out, &s)
	}
	return out, rows.Err()
}
