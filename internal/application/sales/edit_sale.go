package sales

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

// EditSaleUseCase corrige una venta ya registrada: repone el stock de los
// renglones viejos, aplica los nuevos, y mueve la deuda entre clientes si
// la corrección cambia de deudor. Todo en una transacción.
type EditSaleUseCase struct {
	txRunner     TxRunner
	converter    *currency.Converter
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewEditSaleUseCase construye el caso de uso.
func NewEditSaleUseCase(
	txRunner TxRunner,
	converter *currency.Converter,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *EditSaleUseCase {
	return &EditSaleUseCase{
		txRunner:     txRunner,
		converter:    converter,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// EditSale reemplaza por completo los renglones y el pago de la venta.
// La tasa congelada de una venta ETB NO se recalcula: la corrección se
// evalúa con la tasa del día en que se vendió.
func (uc *EditSaleUseCase) EditSale(ctx context.Context, id, userID string, in dto.EditSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || in.AmountPaid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	var newItems []*entity.SaleItem
	productNames := make(map[string]string)

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		oldItems, err := saleRepo.GetItems(id)
		if err != nil {
			return err
		}

		now := time.Now()
		code := sale.Currency

		// Tasa para el piso: la congelada si la venta la tiene, la vigente si no.
		var rate decimal.Decimal
		if sale.ExchangeRateAtSale.GreaterThan(decimal.Zero) {
			rate = sale.ExchangeRateAtSale
		} else {
			rate, err = uc.converter.RateForSale(code)
			if err != nil {
				return err
			}
		}

		// 1) Reponer el stock de los renglones viejos, con asiento en el libro.
		for _, old := range oldItems {
			product, err := productRepo.GetForUpdate(old.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			oldStock := product.CurrentStock
			newStock := oldStock.Add(old.Quantity)
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			relatedID := sale.ID
			if err := logRepo.Create(&entity.InventoryLog{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Action:         entity.InventoryActionAdjustment,
				QuantityChange: old.Quantity,
				OldQuantity:    oldStock,
				NewQuantity:    newStock,
				RelatedSaleID:  &relatedID,
				UserID:         &userID,
				Notes:          "reposición por edición de venta",
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		// 2) Aplicar los renglones nuevos con las mismas reglas de una venta.
		var total decimal.Decimal
		for _, line := range in.Items {
			if line.ProductID == "" {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			productNames[product.ID] = product.Name
			if !product.ValidateQuantity(line.Quantity) {
				return domain.ErrInvalidQuantity
			}
			if product.CurrentStock.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}
			floor := product.SellingPrice.Mul(rate)
			unitPrice := line.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = floor
			}
			if unitPrice.LessThan(product.PurchasePrice.Mul(rate)) {
				return domain.ErrPriceBelowCost
			}
			if unitPrice.LessThan(floor) {
				return domain.ErrPriceBelowFloor
			}
			lineTotal := line.Quantity.Mul(unitPrice)
			total = total.Add(lineTotal)
			newItems = append(newItems, &entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     sale.ID,
				ProductID:  product.ID,
				Quantity:   line.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: lineTotal,
			})

			oldStock := product.CurrentStock
			newStock := oldStock.Sub(line.Quantity)
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			relatedID := sale.ID
			if err := logRepo.Create(&entity.InventoryLog{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Action:         entity.InventoryActionSale,
				QuantityChange: line.Quantity.Neg(),
				OldQuantity:    oldStock,
				NewQuantity:    newStock,
				RelatedSaleID:  &relatedID,
				UserID:         &userID,
				Notes:          "edición de venta",
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		// 3) Mover la deuda: quitarla del cliente viejo, ponérsela al nuevo.
		oldDebt := sale.DebtAmount
		oldCustomerID := sale.CustomerID

		sale.TotalAmount = total
		sale.AmountPaid = in.AmountPaid
		sale.RecalcDebt()
		sale.IsCompleted = sale.DebtAmount.IsZero()
		sale.UpdatedAt = now
		if in.CustomerID != nil {
			if *in.CustomerID == "" {
				sale.CustomerID = nil
			} else {
				sale.CustomerID = in.CustomerID
			}
		}
		if sale.DebtAmount.GreaterThan(decimal.Zero) && sale.CustomerID == nil {
			return domain.ErrCustomerRequired
		}

		sameCustomer := oldCustomerID != nil && sale.CustomerID != nil && *oldCustomerID == *sale.CustomerID
		if sameCustomer {
			customer, err := customerRepo.GetForUpdate(*sale.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return domain.ErrNotFound
			}
			customer.ApplyDebt(code, sale.DebtAmount.Sub(oldDebt))
			customer.UpdatedAt = now
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		} else {
			if oldCustomerID != nil && oldDebt.GreaterThan(decimal.Zero) {
				customer, err := customerRepo.GetForUpdate(*oldCustomerID)
				if err != nil {
					return err
				}
				if customer != nil {
					customer.ApplyDebt(code, oldDebt.Neg())
					customer.UpdatedAt = now
					if err := customerRepo.Update(customer); err != nil {
						return err
					}
				}
			}
			if sale.CustomerID != nil {
				customer, err := customerRepo.GetForUpdate(*sale.CustomerID)
				if err != nil {
					return err
				}
				if customer == nil {
					return domain.ErrNotFound
				}
				if sale.DebtAmount.GreaterThan(decimal.Zero) {
					customer.ApplyDebt(code, sale.DebtAmount)
				}
				customer.UpdatedAt = now
				if err := customerRepo.Update(customer); err != nil {
					return err
				}
			}
		}

		// 4) Reemplazar renglones y guardar la cabecera.
		if err := saleRepo.DeleteItems(sale.ID); err != nil {
			return err
		}
		for _, item := range newItems {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return saleRepo.Update(sale)
	})
	if err != nil {
		return nil, err
	}

	return toResponse(sale, newItems, productNames, ""), nil
}
