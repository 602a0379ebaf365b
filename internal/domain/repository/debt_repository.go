package repository

import "github.com/zackv/zvshop-api/internal/domain/entity"

// DebtPaymentRepository define el puerto de persistencia para DebtPayment.
type DebtPaymentRepository interface {
	Create(payment *entity.DebtPayment) error
	ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtPayment, error)
}

// DebtCorrectionRepository define el puerto del diario de correcciones
// manuales de deuda. Append-only, igual que el libro de inventario.
type DebtCorrectionRepository interface {
	Create(correction *entity.DebtCorrection) error
	ListByCustomer(customerID string, limit, offset int) ([]*entity.DebtCorrection, error)
}
