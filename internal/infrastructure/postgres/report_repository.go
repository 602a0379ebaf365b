package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesTotals agrega las ventas de una moneda en [from, to).
func (r *ReportRepo) SalesTotals(ctx context.Context, code currency.Code, from, to time.Time) (*repository.SalesTotals, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(amount_paid), 0),
			COALESCE(SUM(debt_amount), 0)
		FROM sales
		WHERE currency = $1 AND created_at >= $2 AND created_at < $3`
	totals := &repository.SalesTotals{Currency: code}
	err := r.q.QueryRow(ctx, query, code.String(), from, to).Scan(
		&totals.SaleCount, &totals.Revenue, &totals.Collected, &totals.DebtIssued,
	)
	if err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}
	return totals, nil
}

// ProfitRows devuelve venta+renglón+producto de todas las ventas de [from, to).
// La descomposición de ganancia se hace en memoria (domain/profit), porque
// necesita la tasa congelada por venta y su degradación a cero.
func (r *ReportRepo) ProfitRows(ctx context.Context, from, to time.Time) ([]*repository.ProfitRow, error) {
	query := `
		SELECT s.id, s.transaction_id, s.currency, s.total_amount, s.amount_paid, s.debt_amount, s.exchange_rate_at_sale,
			i.id, i.sale_id, i.product_id, i.quantity, i.unit_price, i.total_price,
			p.id, p.name, p.purchase_price, p.selling_price, p.selling_unit
		FROM sales s
		JOIN sale_items i ON i.sale_id = s.id
		JOIN products p ON p.id = i.product_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		ORDER BY s.created_at`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("profit rows: %w", err)
	}
	defer rows.Close()

	var out []*repository.ProfitRow
	for rows.Next() {
		var row repository.ProfitRow
		var code string
		if err := rows.Scan(
			&row.Sale.ID, &row.Sale.TransactionID, &code, &row.Sale.TotalAmount,
			&row.Sale.AmountPaid, &row.Sale.DebtAmount, &row.Sale.ExchangeRateAtSale,
			&row.Item.ID, &row.Item.SaleID, &row.Item.ProductID, &row.Item.Quantity,
			&row.Item.UnitPrice, &row.Item.TotalPrice,
			&row.Product.ID, &row.Product.Name, &row.Product.PurchasePrice,
			&row.Product.SellingPrice, &row.Product.SellingUnit,
		); err != nil {
			return nil, fmt.Errorf("scan profit row: %w", err)
		}
		row.Sale.Currency = currency.Code(code)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// DebtTotals agrega la deuda pendiente por moneda sobre todos los clientes activos.
func (r *ReportRepo) DebtTotals(ctx context.Context) ([]*repository.DebtTotals, error) {
	columns := map[currency.Code]string{
		currency.USD: "debt_usd",
		currency.SOS: "debt_sos",
		currency.ETB: "debt_etb",
	}
	var out []*repository.DebtTotals
	for _, code := range currency.All() {
		col := columns[code]
		query := fmt.Sprintf(
			`SELECT COALESCE(SUM(%s), 0), COUNT(*) FILTER (WHERE %s > 0) FROM customers WHERE is_active`,
			col, col,
		)
		totals := &repository.DebtTotals{Currency: code}
		if err := r.q.QueryRow(ctx, query).Scan(&totals.Total, &totals.Debtors); err != nil {
			return nil, fmt.Errorf("debt totals %s: %w", code, err)
		}
		out = append(out, totals)
	}
	return out, nil
}

// TopProducts ranking por ingreso en USD de [from, to). La conversión a USD
// usa la tasa congelada para ETB y la vigente para SOS; sin tasa, la fila
// aporta cero (mismo criterio de degradación que el cálculo de ganancia).
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]*repository.TopProduct, error) {
	query := `
		SELECT p.id, p.name,
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(
				CASE s.currency
					WHEN 'USD' THEN i.total_price
					WHEN 'SOS' THEN i.total_price / NULLIF(cs.usd_to_sos_rate, 0)
					WHEN 'ETB' THEN i.total_price / NULLIF(s.exchange_rate_at_sale, 0)
				END
			), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		CROSS JOIN currency_settings cs
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY p.id, p.name
		ORDER BY 4 DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []*repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.Quantity, &t.RevenueUSD); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
