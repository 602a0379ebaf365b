package debt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// RecordPaymentUseCase registra un abono de deuda y lo reparte entre las
// ventas pendientes del cliente, la más vieja primero. El saldo agregado
// del cliente y los saldos por venta se mueven juntos, en una transacción.
type RecordPaymentUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.DebtPaymentRepository
}

// NewRecordPaymentUseCase construye el caso de uso.
func NewRecordPaymentUseCase(txRunner TxRunner, paymentRepo repository.DebtPaymentRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo}
}

// RecordPayment aplica el abono. El monto no puede exceder la deuda agregada
// del cliente en esa moneda: un pago mayor es un error del operador, no un
// sobrepago (el sobrepago solo existe al momento de la venta).
func (uc *RecordPaymentUseCase) RecordPayment(ctx context.Context, customerID, userID string, in dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	code, err := currency.Parse(in.Currency)
	if err != nil {
		return nil, err
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.RecordPaymentResponse

	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		paymentRepo repository.DebtPaymentRepository,
		_ repository.DebtCorrectionRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if in.Amount.GreaterThan(customer.DebtIn(code)) {
			return domain.ErrPaymentExceedsDebt
		}

		now := time.Now()

		// Ventas con deuda en esa moneda, la más vieja primero, bloqueadas.
		sales, err := saleRepo.ListDebtBearingForUpdate(customerID, code)
		if err != nil {
			return err
		}

		remaining := in.Amount
		allocations := make([]dto.PaymentAllocation, 0, len(sales))
		for _, sale := range sales {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			applied := decimal.Min(remaining, sale.DebtAmount)
			sale.AmountPaid = sale.AmountPaid.Add(applied)
			sale.RecalcDebt()
			sale.IsCompleted = sale.DebtAmount.IsZero()
			sale.UpdatedAt = now
			if err := saleRepo.Update(sale); err != nil {
				return err
			}
			remaining = remaining.Sub(applied)
			allocations = append(allocations, dto.PaymentAllocation{
				SaleID:        sale.ID,
				TransactionID: sale.TransactionID,
				Applied:       applied,
				RemainingDebt: sale.DebtAmount,
			})
		}
		// Si las ventas no absorben todo (deriva entre el agregado y los
		// saldos por venta), el resto igual descuenta del agregado.

		customer.ApplyDebt(code, in.Amount.Neg())
		customer.UpdatedAt = now
		if err := customerRepo.Update(customer); err != nil {
			return err
		}

		payment := &entity.DebtPayment{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			Currency:   code,
			Amount:     in.Amount,
			UserID:     &userID,
			Notes:      in.Notes,
			CreatedAt:  now,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		resp = &dto.RecordPaymentResponse{
			PaymentID:     payment.ID,
			CustomerID:    customerID,
			Currency:      code.String(),
			Amount:        in.Amount,
			Allocations:   allocations,
			RemainingDebt: customer.DebtIn(code),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPayments lista los abonos de un cliente.
func (uc *RecordPaymentUseCase) ListPayments(ctx context.Context, customerID string, page dto.PageRequest) ([]dto.DebtPaymentResponse, error) {
	page.DefaultPage()
	payments, err := uc.paymentRepo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.DebtPaymentResponse{
			ID:         p.ID,
			CustomerID: p.CustomerID,
			Currency:   p.Currency.String(),
			Amount:     p.Amount,
			Notes:      p.Notes,
			CreatedAt:  p.CreatedAt,
		})
	}
	return out, nil
}
