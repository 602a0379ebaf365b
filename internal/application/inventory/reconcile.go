package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
	"github.com/zackv/zvshop-api/pkg/logger"
)

// ReconcileUseCase compara el stock actual de cada producto contra lo que el
// libro dice que debería haber (reposiciones menos ventas) y, en modo fix,
// repara el desvío dejando un asiento ADJUSTMENT.
type ReconcileUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner, productRepo repository.ProductRepository, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, productRepo: productRepo, log: log}
}

// Reconcile recorre todos los productos. Con fix=false solo reporta; con
// fix=true fija el stock al valor esperado. Un esperado negativo (el libro
// registra más ventas que entradas) se recorta a cero.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, fix bool) (*dto.ReconcileReportResponse, error) {
	report := &dto.ReconcileReportResponse{CheckedAt: time.Now()}

	// El listado va fuera de la tx; cada producto con desvío se repara en la
	// suya, releyendo con FOR UPDATE para no pisar ventas concurrentes.
	const batch = 500
	offset := 0
	for {
		products, err := uc.productRepo.List(batch, offset)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			break
		}
		for _, product := range products {
			report.Total++
			result, err := uc.reconcileProduct(ctx, product.ID, fix)
			if err != nil {
				return nil, err
			}
			if result != nil {
				report.Drifted = append(report.Drifted, *result)
			}
		}
		if len(products) < batch {
			break
		}
		offset += batch
	}
	return report, nil
}

func (uc *ReconcileUseCase) reconcileProduct(ctx context.Context, productID string, fix bool) (*dto.ReconcileResult, error) {
	var result *dto.ReconcileResult

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		restocked, err := logRepo.TotalRestocked(productID)
		if err != nil {
			return err
		}
		sold, err := saleRepo.TotalSoldQuantity(productID)
		if err != nil {
			return err
		}
		expected := restocked.Sub(sold)
		if expected.IsNegative() {
			expected = decimal.Zero
		}

		drift := product.CurrentStock.Sub(expected)
		if drift.IsZero() {
			return nil
		}

		uc.log.Warn().
			Str("product_id", productID).
			Str("current", product.CurrentStock.String()).
			Str("expected", expected.String()).
			Str("drift", drift.String()).
			Bool("fix", fix).
			Msg("desvío de inventario detectado")

		result = &dto.ReconcileResult{
			ProductID:     productID,
			ProductName:   product.Name,
			CurrentStock:  product.CurrentStock,
			ExpectedStock: expected,
			Drift:         drift,
			Fixed:         fix,
		}
		if !fix {
			return nil
		}

		// Capturar el stock antes de escribir: el repo puede devolver la misma
		// instancia que luego muta UpdateStock.
		oldStock := product.CurrentStock
		if err := productRepo.UpdateStock(productID, expected); err != nil {
			return err
		}
		return logRepo.Create(&entity.InventoryLog{
			ID:             uuid.New().String(),
			ProductID:      productID,
			Action:         entity.InventoryActionAdjustment,
			QuantityChange: expected.Sub(oldStock),
			OldQuantity:    oldStock,
			NewQuantity:    expected,
			Notes:          fmt.Sprintf("reconciliación: stock %s ajustado a %s", oldStock, expected),
			CreatedAt:      time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
