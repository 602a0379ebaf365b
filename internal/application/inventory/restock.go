package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// RestockUseCase registra una reposición de stock con su asiento en el libro.
type RestockUseCase struct {
	txRunner TxRunner
	logRepo  repository.InventoryLogRepository
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(txRunner TxRunner, logRepo repository.InventoryLogRepository) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner, logRepo: logRepo}
}

// Restock suma la cantidad al stock del producto. La cantidad debe ser
// positiva y válida para la unidad del producto (PIECE exige enteros).
func (uc *RestockUseCase) Restock(ctx context.Context, productID, userID string, in dto.RestockRequest) (*dto.InventoryLogResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	var logEntry *entity.InventoryLog

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.SellingUnit == entity.UnitPiece && !in.Quantity.IsInteger() {
			return domain.ErrInvalidQuantity
		}

		now := time.Now()
		oldStock := product.CurrentStock
		newStock := oldStock.Add(in.Quantity)
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		logEntry = &entity.InventoryLog{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			Action:         entity.InventoryActionRestock,
			QuantityChange: in.Quantity,
			OldQuantity:    oldStock,
			NewQuantity:    newStock,
			UserID:         &userID,
			Notes:          in.Notes,
			CreatedAt:      now,
		}
		return logRepo.Create(logEntry)
	})
	if err != nil {
		return nil, err
	}
	return toLogResponse(logEntry), nil
}

// History devuelve el historial del libro de un producto, paginado.
func (uc *RestockUseCase) History(ctx context.Context, productID string, page dto.PageRequest) (*dto.InventoryLogListResponse, error) {
	page.DefaultPage()
	entries, err := uc.logRepo.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryLogListResponse{
		Items: make([]dto.InventoryLogResponse, 0, len(entries)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entries {
		resp.Items = append(resp.Items, *toLogResponse(e))
	}
	return resp, nil
}

func toLogResponse(e *entity.InventoryLog) *dto.InventoryLogResponse {
	return &dto.InventoryLogResponse{
		ID:             e.ID,
		ProductID:      e.ProductID,
		Action:         e.Action,
		QuantityChange: e.QuantityChange,
		OldQuantity:    e.OldQuantity,
		NewQuantity:    e.NewQuantity,
		RelatedSaleID:  e.RelatedSaleID,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
}
