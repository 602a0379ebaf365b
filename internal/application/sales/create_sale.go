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

// CreateSaleUseCase registra una venta y descuenta el inventario en una sola
// transacción: cabecera, renglones, stock, libro de inventario y deuda del
// cliente quedan consistentes o no queda nada.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	converter    *currency.Converter
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	converter *currency.Converter,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		converter:    converter,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// CreateSale valida y persiste la venta. Reglas principales:
//   - la tasa de cambio vigente es obligatoria para monedas no-USD;
//     para ETB queda congelada en la venta (ExchangeRateAtSale).
//   - ningún renglón puede quedar bajo el precio piso del producto
//     (SellingPrice en USD convertido a la moneda de la venta).
//   - si queda deuda (pagado < total) la venta exige cliente.
//   - el sobrepago se acepta y se conserva tal cual (entra a la ganancia).
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	code, err := currency.Parse(in.Currency)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 || in.AmountPaid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Tasa vigente 1 USD = X. Para USD es 1; ausente o <= 0 bloquea la venta.
	rate, err := uc.converter.RateForSale(code)
	if err != nil {
		return nil, err
	}
	frozenRate := decimal.Zero
	if code.FreezesRate() {
		frozenRate = rate
	}

	// Cliente (si viene) se valida fuera de la tx; el bloqueo de fila va adentro.
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale
	var items []*entity.SaleItem
	productNames := make(map[string]string)

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		var total decimal.Decimal
		items = items[:0]

		for _, line := range in.Items {
			if line.ProductID == "" {
				return domain.ErrInvalidInput
			}
			// FOR UPDATE: dos ventas simultáneas del mismo producto se serializan aquí.
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.IsActive {
				return domain.ErrNotFound
			}
			productNames[product.ID] = product.Name

			if !product.ValidateQuantity(line.Quantity) {
				return domain.ErrInvalidQuantity
			}
			if product.CurrentStock.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}

			// Precio piso convertido a la moneda de la venta.
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
			items = append(items, &entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     saleID,
				ProductID:  product.ID,
				Quantity:   line.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: lineTotal,
			})

			// Descontar stock y asentarlo en el libro (append-only).
			oldStock := product.CurrentStock
			newStock := oldStock.Sub(line.Quantity)
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			relatedID := saleID
			if err := logRepo.Create(&entity.InventoryLog{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Action:         entity.InventoryActionSale,
				QuantityChange: line.Quantity.Neg(),
				OldQuantity:    oldStock,
				NewQuantity:    newStock,
				RelatedSaleID:  &relatedID,
				UserID:         &userID,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		sale = &entity.Sale{
			ID:                 saleID,
			TransactionID:      uuid.New().String(),
			Currency:           code,
			UserID:             &userID,
			TotalAmount:        total,
			AmountPaid:         in.AmountPaid,
			ExchangeRateAtSale: frozenRate,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if in.CustomerID != "" {
			customerID := in.CustomerID
			sale.CustomerID = &customerID
		}
		sale.RecalcDebt()
		sale.IsCompleted = sale.DebtAmount.IsZero()

		// Deuda sin cliente no existe: no habría a quién cobrarle.
		if sale.DebtAmount.GreaterThan(decimal.Zero) && sale.CustomerID == nil {
			return domain.ErrCustomerRequired
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
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
			customer.LastPurchaseDate = &now
			customer.UpdatedAt = now
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(sale, items, productNames, ""), nil
}

// GetSale obtiene una venta por ID con sus renglones.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	for _, item := range items {
		if _, ok := names[item.ProductID]; ok {
			continue
		}
		if product, _ := uc.productRepo.GetByID(item.ProductID); product != nil {
			names[item.ProductID] = product.Name
		}
	}
	customerName := ""
	if sale.CustomerID != nil {
		if customer, _ := uc.customerRepo.GetByID(*sale.CustomerID); customer != nil {
			customerName = customer.Name
		}
	}
	return toResponse(sale, items, names, customerName), nil
}

// ListSales lista ventas recientes paginadas (sin renglones).
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, sale := range sales {
		resp.Items = append(resp.Items, *toResponse(sale, nil, nil, ""))
	}
	return resp, nil
}

// ListCustomerSales lista las ventas de un cliente.
func (uc *CreateSaleUseCase) ListCustomerSales(ctx context.Context, customerID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, sale := range sales {
		resp.Items = append(resp.Items, *toResponse(sale, nil, nil, ""))
	}
	return resp, nil
}

func toResponse(sale *entity.Sale, items []*entity.SaleItem, productNames map[string]string, customerName string) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                 sale.ID,
		TransactionID:      sale.TransactionID,
		Currency:           sale.Currency.String(),
		CustomerID:         sale.CustomerID,
		CustomerName:       customerName,
		TotalAmount:        sale.TotalAmount,
		AmountPaid:         sale.AmountPaid,
		DebtAmount:         sale.DebtAmount,
		ExchangeRateAtSale: sale.ExchangeRateAtSale,
		IsCompleted:        sale.IsCompleted,
		Items:              make([]dto.SaleItemResponse, 0, len(items)),
		CreatedAt:          sale.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: productNames[item.ProductID],
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
