package repository

import (
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La implementación vive en infrastructure.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Es la sección crítica del motor de ventas: dos ventas simultáneas no
	// pueden pasar el chequeo de stock con datos viejos.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto (usado solo dentro de una tx,
	// tras GetForUpdate).
	UpdateStock(id string, stock decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	Search(query string, limit int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
