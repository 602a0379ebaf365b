package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/sales"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
)

const testUserID = "user-1"

type saleFixture struct {
	uc        *sales.CreateSaleUseCase
	editUC    *sales.EditSaleUseCase
	products  *memProductRepo
	customers *memCustomerRepo
	saleRepo  *memSaleRepo
	logs      *memLogRepo
}

// newSaleFixture arma el caso de uso con un producto de costo $10, piso $20 y
// stock 50, tasas 1 USD = 8000 SOS = 140 ETB.
func newSaleFixture(customers ...*entity.Customer) *saleFixture {
	products := newMemProductRepo(&entity.Product{
		ID:            "prod-1",
		Name:          "Vape Kit",
		PurchasePrice: decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(20),
		SellingUnit:   entity.UnitPiece,
		CurrentStock:  decimal.NewFromInt(50),
		IsActive:      true,
	})
	customerRepo := newMemCustomerRepo(customers...)
	saleRepo := newMemSaleRepo()
	logs := &memLogRepo{}
	conv := currency.NewConverter(&fakeRateProvider{rates: currency.Rates{
		USDToSOS: decimal.NewFromInt(8000),
		USDToETB: decimal.NewFromInt(140),
	}})
	runner := &memTxRunner{sales: saleRepo, products: products, customers: customerRepo, logs: logs}
	return &saleFixture{
		uc:        sales.NewCreateSaleUseCase(runner, conv, saleRepo, products, customerRepo),
		editUC:    sales.NewEditSaleUseCase(runner, conv, saleRepo, products, customerRepo),
		products:  products,
		customers: customerRepo,
		saleRepo:  saleRepo,
		logs:      logs,
	}
}

func (f *saleFixture) stock(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	p, err := f.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.CurrentStock
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Venta USD de 3 unidades a $25 pagada completa: total 75, sin deuda, stock 47.
func TestCreateSale_USDPagadaCompleta(t *testing.T) {
	f := newSaleFixture()

	resp, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(75),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(75).Equal(resp.TotalAmount))
	assert.True(t, resp.DebtAmount.IsZero())
	assert.True(t, resp.IsCompleted)
	assert.True(t, resp.ExchangeRateAtSale.IsZero(), "USD no congela tasa")
	assert.True(t, decimal.NewFromInt(47).Equal(f.stock(t, "prod-1")))

	// El descuento de stock queda asentado en el libro como SALE.
	require.Len(t, f.logs.logs, 1)
	entry := f.logs.logs[0]
	assert.Equal(t, entity.InventoryActionSale, entry.Action)
	assert.True(t, decimal.NewFromInt(-3).Equal(entry.QuantityChange))
	require.NotNil(t, entry.RelatedSaleID)
	assert.Equal(t, resp.ID, *entry.RelatedSaleID)
}

// Precio omitido (cero): el renglón sale al precio piso.
func TestCreateSale_PrecioOmitidoUsaElPiso(t *testing.T) {
	f := newSaleFixture()

	resp, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(40),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(resp.TotalAmount), "2 × piso $20")
}

// Venta SOS parcial (escenario B): piso $20 × 8000 = 160000 SOS por unidad.
// 2 unidades = 320000, pagado 200000 => deuda 120000 al cliente.
func TestCreateSale_SOSParcialAcumulaDeudaAlCliente(t *testing.T) {
	customer := &entity.Customer{ID: "cust-1", Name: "Asha", IsActive: true}
	f := newSaleFixture(customer)

	resp, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "SOS",
		CustomerID: "cust-1",
		AmountPaid: decimal.NewFromInt(200000),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(160000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(120000).Equal(resp.DebtAmount))
	assert.False(t, resp.IsCompleted)

	got, _ := f.customers.GetByID("cust-1")
	assert.True(t, decimal.NewFromInt(120000).Equal(got.DebtSOS),
		"la deuda de la venta se suma al silo SOS del cliente")
	assert.True(t, got.DebtUSD.IsZero())
	assert.NotNil(t, got.LastPurchaseDate)
}

// Venta ETB: la tasa vigente queda congelada en la venta.
func TestCreateSale_ETBCongelaTasa(t *testing.T) {
	f := newSaleFixture()

	resp, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "ETB",
		AmountPaid: decimal.NewFromInt(2800),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2800)},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(140).Equal(resp.ExchangeRateAtSale))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Bajo el piso en la moneda de la venta: 159999 SOS < $20 × 8000.
func TestCreateSale_BajoElPiso_Rechazada(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "SOS",
		AmountPaid: decimal.NewFromInt(159999),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(159999)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrPriceBelowFloor)
	assert.True(t, decimal.NewFromInt(50).Equal(f.stock(t, "prod-1")), "nada persistido")
}

// Bajo el costo en la moneda de la venta: 50000 SOS < $10 × 8000.
func TestCreateSale_BajoElCosto_Rechazada(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "SOS",
		AmountPaid: decimal.NewFromInt(50000),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrPriceBelowCost)
	assert.True(t, decimal.NewFromInt(50).Equal(f.stock(t, "prod-1")), "nada persistido")
}

func TestCreateSale_StockInsuficiente_Rechazada(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(2000),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(51), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateSale_CantidadFraccionariaEnPiece_Rechazada(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(30),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Escenario D: venta a crédito sin cliente. Se rechaza entera: el stock y el
// libro vuelven atrás con la transacción.
func TestCreateSale_DeudaSinCliente_RechazadaSinEfectos(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(10), // total 20, queda deuda
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	require.ErrorIs(t, err, domain.ErrCustomerRequired)

	assert.True(t, decimal.NewFromInt(50).Equal(f.stock(t, "prod-1")), "stock intacto")
	assert.Empty(t, f.logs.logs, "sin asientos en el libro")
	assert.Empty(t, f.saleRepo.sales, "sin venta persistida")
}

// Sobrepago al contado sin cliente: válido (no hay deuda que cobrar).
func TestCreateSale_SobrepagoSinCliente_Valida(t *testing.T) {
	f := newSaleFixture()

	resp, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		AmountPaid: decimal.NewFromInt(25),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.DebtAmount.IsZero())
	assert.True(t, decimal.NewFromInt(25).Equal(resp.AmountPaid), "el sobrepago se conserva tal cual")
}

// Sin tasa configurada, las ventas en esa moneda quedan bloqueadas.
func TestCreateSale_SinTasaConfigurada_Bloqueada(t *testing.T) {
	f := newSaleFixture()
	conv := currency.NewConverter(&fakeRateProvider{rates: currency.Rates{}})
	uc := sales.NewCreateSaleUseCase(
		&memTxRunner{sales: f.saleRepo, products: f.products, customers: f.customers, logs: f.logs},
		conv, f.saleRepo, f.products, f.customers,
	)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "ETB",
		AmountPaid: decimal.NewFromInt(2800),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2800)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrRateNotConfigured)
}

func TestCreateSale_MonedaInvalida(t *testing.T) {
	f := newSaleFixture()
	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "EUR",
		AmountPaid: decimal.NewFromInt(10),
		Items:      []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_SinRenglones(t *testing.T) {
	f := newSaleFixture()
	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency: "USD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	f := newSaleFixture()
	_, err := f.uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Currency:   "USD",
		CustomerID: "no-existe",
		AmountPaid: decimal.NewFromInt(20),
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
