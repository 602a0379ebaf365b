package debt

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// CorrectDebtUseCase fija a mano el saldo agregado de deuda de un cliente en
// una moneda. Cada corrección exige motivo y queda en un diario append-only;
// las deudas por venta NO se tocan (la corrección repara el agregado, no la
// historia).
type CorrectDebtUseCase struct {
	txRunner       TxRunner
	correctionRepo repository.DebtCorrectionRepository
}

// NewCorrectDebtUseCase construye el caso de uso.
func NewCorrectDebtUseCase(txRunner TxRunner, correctionRepo repository.DebtCorrectionRepository) *CorrectDebtUseCase {
	return &CorrectDebtUseCase{txRunner: txRunner, correctionRepo: correctionRepo}
}

// CorrectDebt aplica la corrección. NewAmount negativo se recorta a cero.
func (uc *CorrectDebtUseCase) CorrectDebt(ctx context.Context, customerID, userID string, in dto.CorrectDebtRequest) (*dto.DebtCorrectionResponse, error) {
	code, err := currency.Parse(in.Currency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	var resp *dto.DebtCorrectionResponse

	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SaleRepository,
		_ repository.DebtPaymentRepository,
		correctionRepo repository.DebtCorrectionRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		oldAmount := customer.DebtIn(code)
		customer.SetDebt(code, in.NewAmount)
		newAmount := customer.DebtIn(code)
		customer.UpdatedAt = now
		if err := customerRepo.Update(customer); err != nil {
			return err
		}

		correction := &entity.DebtCorrection{
			ID:            uuid.New().String(),
			CustomerID:    customerID,
			Currency:      code,
			OldDebtAmount: oldAmount,
			NewDebtAmount: newAmount,
			Adjustment:    newAmount.Sub(oldAmount),
			Reason:        strings.TrimSpace(in.Reason),
			UserID:        &userID,
			CreatedAt:     now,
		}
		if err := correctionRepo.Create(correction); err != nil {
			return err
		}

		resp = &dto.DebtCorrectionResponse{
			ID:            correction.ID,
			CustomerID:    correction.CustomerID,
			Currency:      code.String(),
			OldDebtAmount: correction.OldDebtAmount,
			NewDebtAmount: correction.NewDebtAmount,
			Adjustment:    correction.Adjustment,
			Reason:        correction.Reason,
			CreatedAt:     correction.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListCorrections lista el diario de correcciones de un cliente.
func (uc *CorrectDebtUseCase) ListCorrections(ctx context.Context, customerID string, page dto.PageRequest) ([]dto.DebtCorrectionResponse, error) {
	page.DefaultPage()
	corrections, err := uc.correctionRepo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtCorrectionResponse, 0, len(corrections))
	for _, c := range corrections {
		out = append(out, dto.DebtCorrectionResponse{
			ID:            c.ID,
			CustomerID:    c.CustomerID,
			Currency:      c.Currency.String(),
			OldDebtAmount: c.OldDebtAmount,
			NewDebtAmount: c.NewDebtAmount,
			Adjustment:    c.Adjustment,
			Reason:        c.Reason,
			CreatedAt:     c.CreatedAt,
		})
	}
	return out, nil
}
