package debt

import (
	"context"

	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que toca un abono o una corrección de deuda.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		paymentRepo repository.DebtPaymentRepository,
		correctionRepo repository.DebtCorrectionRepository,
	) error) error
}
