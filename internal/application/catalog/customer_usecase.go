package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes. Las deudas no se mutan por aquí: eso es
// de venta, abono y corrección.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// CreateCustomer crea un cliente. El teléfono, si viene, debe ser único.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Phone != "" {
		existing, err := uc.customerRepo.GetByPhone(in.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Notes:     in.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// UpdateCustomer actualiza datos del cliente.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers lista clientes paginados.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	customers, err := uc.customerRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toCustomerList(customers, page), nil
}

// SearchCustomers busca por nombre o teléfono.
func (uc *CustomerUseCase) SearchCustomers(ctx context.Context, query string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	if query == "" {
		return uc.ListCustomers(ctx, page)
	}
	customers, err := uc.customerRepo.Search(query, page.Limit)
	if err != nil {
		return nil, err
	}
	return toCustomerList(customers, page), nil
}

// ListDebtors lista los clientes con deuda en alguna moneda.
func (uc *CustomerUseCase) ListDebtors(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.ListWithDebt()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// DeleteCustomer desactiva un cliente. Con deuda pendiente no se puede.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.HasDebt() {
		return domain.ErrConflict
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Notes:            c.Notes,
		DebtUSD:          c.DebtUSD,
		DebtSOS:          c.DebtSOS,
		DebtETB:          c.DebtETB,
		HasDebt:          c.HasDebt(),
		LastPurchaseDate: c.LastPurchaseDate,
		CreatedAt:        c.CreatedAt,
	}
}

func toCustomerList(customers []*entity.Customer, page dto.PageRequest) *dto.CustomerListResponse {
	resp := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(customers)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range customers {
		resp.Items = append(resp.Items, *toCustomerResponse(c))
	}
	return resp
}
