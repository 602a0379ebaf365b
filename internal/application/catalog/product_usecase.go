package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	restockUC    *inventory.RestockUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	restockUC *inventory.RestockUseCase,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, restockUC: restockUC}
}

// CreateProduct crea un producto. El precio de venta no puede quedar bajo el
// costo; el stock inicial entra por el libro como RESTOCK, no por asignación.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SellingUnit != entity.UnitPiece && in.SellingUnit != entity.UnitMeter {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.SellingPrice.LessThan(in.PurchasePrice) {
		return nil, domain.ErrPriceBelowCost
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Brand:         in.Brand,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		SellingUnit:   in.SellingUnit,
		CurrentStock:  decimal.Zero,
		LowStockLimit: in.LowStockLimit,
		MinSaleLength: in.MinSaleLength,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	if in.InitialStock.GreaterThan(decimal.Zero) {
		if _, err := uc.restockUC.Restock(ctx, product.ID, userID, dto.RestockRequest{
			Quantity: in.InitialStock,
			Notes:    "stock inicial",
		}); err != nil {
			return nil, err
		}
		product.CurrentStock = in.InitialStock
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza campos del producto. El stock no se toca aquí.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if product.SellingPrice.LessThan(product.PurchasePrice) {
		return nil, domain.ErrPriceBelowCost
	}
	if in.LowStockLimit != nil {
		product.LowStockLimit = *in.LowStockLimit
	}
	if in.MinSaleLength != nil {
		product.MinSaleLength = in.MinSaleLength
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto por ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts lista productos paginados.
func (uc *ProductUseCase) ListProducts(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(products, page), nil
}

// SearchProducts busca por nombre o marca.
func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	if query == "" {
		return uc.ListProducts(ctx, page)
	}
	products, err := uc.productRepo.Search(query, page.Limit)
	if err != nil {
		return nil, err
	}
	return toProductList(products, page), nil
}

// ListLowStock lista los productos en o bajo su umbral de stock.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// DeleteProduct desactiva el producto (borrado lógico: el historial de ventas
// y el libro lo siguen referenciando).
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// CreateCategory crea una categoría con nombre único.
func (uc *ProductUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}, nil
}

// ListCategories lista todas las categorías.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		CategoryID:    p.CategoryID,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		SellingUnit:   p.SellingUnit,
		CurrentStock:  p.CurrentStock,
		LowStockLimit: p.LowStockLimit,
		MinSaleLength: p.MinSaleLength,
		IsLowStock:    p.IsLowStock(),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp
}
