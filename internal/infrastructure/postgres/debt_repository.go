package postgres

import (
	"context"
	"fmt"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

var _ repository.DebtPaymentRepository = (*DebtPaymentRepo)(nil)
var _ repository.DebtCorrectionRepository = (*DebtCorrectionRepo)(nil)

// DebtPaymentRepo implementación de DebtPaymentRepository sobre PostgreSQL.
type DebtPaymentRepo struct {
	q Querier
}

// NewDebtPaymentRepository construye el adaptador de abonos. Pasar pool o tx (Querier).
func NewDebtPaymentRepository(q Querier) *DebtPaymentRepo {
	return &DebtPaymentRepo{q: q}
}

// Create asienta un abono.
func (r *DebtPaymentRepo) Create(payment *entity.DebtPayment) error {
	query := `
		INSERT INTO debt_payments (id, customer_id, currency, amount, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CustomerID, payment.Currency.String(), payment.Amount,
		payment.UserID, payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt payment: %w", err)
	}
	return nil
}

// ListByCustomer lista los abonos de un cliente, el más reciente primero.
func (r *DebtPaymentRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtPayment, error) {
	query := `
		SELECT id, customer_id, currency, amount, user_id, notes, created_at
		FROM debt_payments WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list debt payments: %w", err)
	}
	defer rows.Close()
	var out []*entity.DebtPayment
	for rows.Next() {
		var p entity.DebtPayment
		var code string
		if err := rows.Scan(&p.ID, &p.CustomerID, &code, &p.Amount, &p.UserID, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan debt payment: %w", err)
		}
		p.Currency = currency.Code(code)
		out = append(out, &p)
	}
	return out, rows.Err()
}

// DebtCorrectionRepo implementación del diario de correcciones sobre PostgreSQL.
type DebtCorrectionRepo struct {
	q Querier
}

// NewDebtCorrectionRepository construye el adaptador del diario. Pasar pool o tx (Querier).
func NewDebtCorrectionRepository(q Querier) *DebtCorrectionRepo {
	return &DebtCorrectionRepo{q: q}
}

// Create asienta una corrección.
func (r *DebtCorrectionRepo) Create(correction *entity.DebtCorrection) error {
	query := `
		INSERT INTO debt_corrections (id, customer_id, currency, old_debt_amount, new_debt_amount, adjustment, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		correction.ID, correction.CustomerID, correction.Currency.String(),
		correction.OldDebtAmount, correction.NewDebtAmount, correction.Adjustment,
		correction.Reason, correction.UserID, correction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt correction: %w", err)
	}
	return nil
}

// ListByCustomer lista las correcciones de un cliente, la más reciente primero.
func (r *DebtCorrectionRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtCorrection, error) {
	query := `
		SELECT id, customer_id, currency, old_debt_amount, new_debt_amount, adjustment, reason, user_id, created_at
		FROM debt_corrections WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list debt corrections: %w", err)
	}
	defer rows.Close()
	var out []*entity.DebtCorrection
	for rows.Next() {
		var c entity.DebtCorrection
		var code string
		if err := rows.Scan(
			&c.ID, &c.CustomerID, &code, &c.OldDebtAmount, &c.NewDebtAmount,
			&c.Adjustment, &c.Reason, &c.UserID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan debt correction: %w", err)
		}
		c.Currency = currency.Code(code)
		out = append(out, &c)
	}
	return out, rows.Err()
}
