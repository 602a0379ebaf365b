package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación del libro de inventario sobre PostgreSQL.
// Solo inserta y lee: el libro es append-only.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create asienta una entrada en el libro.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (id, product_id, action, quantity_change, old_quantity, new_quantity, related_sale_id, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProductID, log.Action, log.QuantityChange, log.OldQuantity,
		log.NewQuantity, log.RelatedSaleID, log.UserID, log.Notes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, lo más reciente primero.
func (r *InventoryLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, product_id, action, quantity_change, old_quantity, new_quantity, related_sale_id, user_id, notes, created_at
		FROM inventory_logs WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// TotalRestocked suma los quantity_change de las entradas RESTOCK del producto.
func (r *InventoryLogRepo) TotalRestocked(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_change), 0) FROM inventory_logs WHERE product_id = $1 AND action = $2`,
		productID, entity.InventoryActionRestock,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total restocked: %w", err)
	}
	return total, nil
}

func (r *InventoryLogRepo) scanAll(rows pgx.Rows) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.Action, &l.QuantityChange, &l.OldQuantity,
			&l.NewQuantity, &l.RelatedSaleID, &l.UserID, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
