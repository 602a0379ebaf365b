package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// SellingPrice es el precio piso en USD: ninguna venta puede bajar de él.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Brand         string           `json:"brand"`
	CategoryID    string           `json:"category_id"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	SellingUnit   string           `json:"selling_unit" validate:"required,oneof=PIECE METER"`
	InitialStock  decimal.Decimal  `json:"initial_stock"`
	LowStockLimit decimal.Decimal  `json:"low_stock_limit"`
	MinSaleLength *decimal.Decimal `json:"min_sale_length"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock:
// el stock solo cambia por el libro de inventario).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand         *string          `json:"brand"`
	CategoryID    *string          `json:"category_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	LowStockLimit *decimal.Decimal `json:"low_stock_limit"`
	MinSaleLength *decimal.Decimal `json:"min_sale_length"`
	IsActive      *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	CategoryID    string           `json:"category_id,omitempty"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	SellingUnit   string           `json:"selling_unit"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	LowStockLimit decimal.Decimal  `json:"low_stock_limit"`
	MinSaleLength *decimal.Decimal `json:"min_sale_length,omitempty"`
	IsLowStock    bool             `json:"is_low_stock"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
