package sales

import (
	"context"
	"fmt"

	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// SaleItemForPDF renglón enriquecido con el nombre del producto.
type SaleItemForPDF struct {
	entity.SaleItem
	ProductName string
}

// ReceiptPDFGenerator puerto del generador de recibos. La implementación
// (Maroto) vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, customer *entity.Customer, items []SaleItemForPDF) ([]byte, error)
}

// PDFUseCase genera el recibo PDF de una venta.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadReceiptPDF recupera la venta con sus renglones y genera el recibo.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la venta no existe.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	var customer *entity.Customer
	if sale.CustomerID != nil {
		customer, err = uc.customerRepo.GetByID(*sale.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
	}

	rawItems, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener renglones: %w", err)
	}
	enriched := make([]SaleItemForPDF, 0, len(rawItems))
	for _, it := range rawItems {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, SaleItemForPDF{SaleItem: *it, ProductName: name})
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, sale, customer, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("recibo_%s.pdf", sale.TransactionID)
	return pdfBytes, filename, nil
}
