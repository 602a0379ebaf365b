package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zackv/zvshop-api/internal/application/debt"
	"github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/application/sales"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// SalesTxRunner, DebtTxRunner e InventoryTxRunner comparten el pool pero
// exponen la firma que espera cada caso de uso.
var _ sales.TxRunner = (*SalesTxRunner)(nil)
var _ debt.TxRunner = (*DebtTxRunner)(nil)
var _ inventory.TxRunner = (*InventoryTxRunner)(nil)

// SalesTxRunner ejecuta callbacks de venta dentro de una transacción PostgreSQL.
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSaleRepository(tx),
		NewProductRepository(tx),
		NewCustomerRepository(tx),
		NewInventoryLogRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// DebtTxRunner ejecuta callbacks de abono/corrección dentro de una transacción.
type DebtTxRunner struct {
	pool *pgxpool.Pool
}

// NewDebtTxRunner construye el runner con el pool.
func NewDebtTxRunner(pool *pgxpool.Pool) *DebtTxRunner {
	return &DebtTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *DebtTxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.DebtPaymentRepository,
	correctionRepo repository.DebtCorrectionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewCustomerRepository(tx),
		NewSaleRepository(tx),
		NewDebtPaymentRepository(tx),
		NewDebtCorrectionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner ejecuta callbacks de stock dentro de una transacción.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewProductRepository(tx),
		NewSaleRepository(tx),
		NewInventoryLogRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
