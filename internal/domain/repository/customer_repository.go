package repository

import "github.com/zackv/zvshop-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetForUpdate bloquea la fila del cliente. Toda mutación de deuda
	// agregada pasa por aquí para evitar lost updates entre venta,
	// abono y corrección concurrentes.
	GetForUpdate(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Search(query string, limit int) ([]*entity.Customer, error)
	ListWithDebt() ([]*entity.Customer, error)
	Delete(id string) error
}
