package profit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/profit"
	"github.com/zackv/zvshop-api/pkg/logger"
)

type fakeProvider struct {
	rates currency.Rates
}

func (f *fakeProvider) CurrentRates() (currency.Rates, error) {
	return f.rates, nil
}

func newCalculator(usdToSOS, usdToETB string) *profit.Calculator {
	conv := currency.NewConverter(&fakeProvider{rates: currency.Rates{
		USDToSOS: decimal.RequireFromString(usdToSOS),
		USDToETB: decimal.RequireFromString(usdToETB),
	}})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return profit.NewCalculator(conv, log)
}

// testProduct: costo $10, piso $20.
func testProduct() *entity.Product {
	return &entity.Product{
		ID:            "prod-1",
		Name:          "Vape Kit",
		PurchasePrice: decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(20),
		SellingUnit:   entity.UnitPiece,
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Descomposición base/premium
// ──────────────────────────────────────────────────────────────────────────────

// Venta USD: 3 unidades a $25 (piso $20, costo $10), pagada completa.
// base = (20-10)×3 = 30; premium = (25-20)×3 = 15.
func TestItemProfit_VentaUSDSobreElPiso(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		ID:          "sale-1",
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(75),
		AmountPaid:  decimal.NewFromInt(75),
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(3),
		UnitPrice:  decimal.NewFromInt(25),
		TotalPrice: decimal.NewFromInt(75),
	}

	got := calc.ItemProfit(sale, item, testProduct())

	assert.True(t, d("30").Equal(got.Base), "base = (20-10)*3, got %s", got.Base)
	assert.True(t, d("15").Equal(got.Premium), "premium = (25-20)*3, got %s", got.Premium)
	assert.True(t, d("45").Equal(got.Total))
}

// Venta exactamente al piso: todo el margen es base, premium cero.
func TestItemProfit_VentaAlPiso_SinPremium(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(40),
		AmountPaid:  decimal.NewFromInt(40),
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(20),
		TotalPrice: decimal.NewFromInt(40),
	}

	got := calc.ItemProfit(sale, item, testProduct())

	assert.True(t, d("20").Equal(got.Base))
	assert.True(t, got.Premium.IsZero())
}

// Venta SOS al piso con tasa 8000: el premium en USD debe salir en cero
// (vendido al piso) y la base no depende de la moneda.
func TestItemProfit_VentaSOSAlPiso(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.SOS,
		TotalAmount: decimal.NewFromInt(320000), // 2 × 160000 SOS
		AmountPaid:  decimal.NewFromInt(320000),
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(160000), // piso $20 × 8000
		TotalPrice: decimal.NewFromInt(320000),
	}

	got := calc.ItemProfit(sale, item, testProduct())

	assert.True(t, d("20").Equal(got.Base))
	assert.True(t, got.Premium.IsZero(), "vendido al piso no genera premium, got %s", got.Premium)
}

// Venta ETB con tasa congelada distinta de la global: manda la congelada.
// 1 unidad a 2800 ETB con tasa congelada 100 => $28 reales, piso $20:
// premium = 28 - 20 = 8. Con la tasa global (140) habría salido 0.
func TestItemProfit_ETBUsaTasaCongelada(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:           currency.ETB,
		TotalAmount:        decimal.NewFromInt(2800),
		AmountPaid:         decimal.NewFromInt(2800),
		ExchangeRateAtSale: decimal.NewFromInt(100),
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  decimal.NewFromInt(2800),
		TotalPrice: decimal.NewFromInt(2800),
	}

	got := calc.ItemProfit(sale, item, testProduct())

	assert.True(t, d("10").Equal(got.Base))
	assert.True(t, d("8").Equal(got.Premium), "premium con tasa congelada 100, got %s", got.Premium)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobrepago: se reparte a prorrata entre líneas, una sola vez por venta
// ──────────────────────────────────────────────────────────────────────────────

func TestItemProfit_SobrepagoSeReparteProRata(t *testing.T) {
	calc := newCalculator("8000", "140")
	// Dos líneas al piso: 60 + 40 = 100, pagado 110 => sobrepago 10.
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(100),
		AmountPaid:  decimal.NewFromInt(110),
	}
	item1 := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(3),
		UnitPrice:  decimal.NewFromInt(20),
		TotalPrice: decimal.NewFromInt(60),
	}
	item2 := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(20),
		TotalPrice: decimal.NewFromInt(40),
	}
	product := testProduct()

	got1 := calc.ItemProfit(sale, item1, product)
	got2 := calc.ItemProfit(sale, item2, product)

	// 10 × 60/100 = 6 y 10 × 40/100 = 4: la suma iguala el sobrepago
	// exactamente una vez, sin duplicarlo por línea.
	assert.True(t, d("6").Equal(got1.Premium), "got %s", got1.Premium)
	assert.True(t, d("4").Equal(got2.Premium), "got %s", got2.Premium)
	assert.True(t, d("10").Equal(got1.Premium.Add(got2.Premium)))
}

// SaleProfit reparte el sobrepago con las mismas proporciones que ItemProfit
// cuando las prorratas salen exactas.
func TestSaleProfit_ProRataExacta(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(100),
		AmountPaid:  decimal.NewFromInt(110),
	}
	product := testProduct()
	lines := []profit.Line{
		{Item: &entity.SaleItem{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(60)}, Product: product},
		{Item: &entity.SaleItem{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(40)}, Product: product},
	}

	got := calc.SaleProfit(sale, lines)

	assert.True(t, d("6").Equal(got[0].Premium), "got %s", got[0].Premium)
	assert.True(t, d("4").Equal(got[1].Premium), "got %s", got[1].Premium)
}

// Prorratas que no salen exactas al centavo: el residuo de redondeo cae en
// la última línea, de modo que la suma iguale el sobrepago exactamente.
// Tres líneas iguales de 20 sobre un total de 60, pagado 60.10:
// 0.10 × 20/60 = 0.0333... => 0.03 + 0.03 + 0.04 = 0.10.
func TestSaleProfit_ResiduoDeRedondeoALaUltimaLinea(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(60),
		AmountPaid:  d("60.10"),
	}
	product := testProduct()
	line := func() profit.Line {
		return profit.Line{
			Item:    &entity.SaleItem{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(20)},
			Product: product,
		}
	}
	lines := []profit.Line{line(), line(), line()}

	got := calc.SaleProfit(sale, lines)

	assert.True(t, d("0.03").Equal(got[0].Premium), "got %s", got[0].Premium)
	assert.True(t, d("0.03").Equal(got[1].Premium), "got %s", got[1].Premium)
	assert.True(t, d("0.04").Equal(got[2].Premium), "got %s", got[2].Premium)

	sum := got[0].Premium.Add(got[1].Premium).Add(got[2].Premium)
	assert.True(t, d("0.10").Equal(sum), "la suma debe igualar el sobrepago al centavo, got %s", sum)
}

// Una línea sin producto degrada su premium a cero sin perder el reparto
// del resto: el residuo cae en la última línea participante.
func TestSaleProfit_LineaDegradadaNoParticipa(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(40),
		AmountPaid:  decimal.NewFromInt(50),
	}
	product := testProduct()
	lines := []profit.Line{
		{Item: &entity.SaleItem{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(20)}, Product: product},
		{Item: &entity.SaleItem{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(20)}, Product: nil},
	}

	got := calc.SaleProfit(sale, lines)

	// La línea sana es la última participante: absorbe todo el sobrepago.
	assert.True(t, d("10").Equal(got[0].Premium), "got %s", got[0].Premium)
	assert.True(t, got[1].Premium.IsZero())
	assert.True(t, got[1].Base.IsZero())
}

func TestItemProfit_PagoParcial_SinSobrepago(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{
		Currency:    currency.USD,
		TotalAmount: decimal.NewFromInt(100),
		AmountPaid:  decimal.NewFromInt(60), // deuda, no sobrepago
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(20),
		TotalPrice: decimal.NewFromInt(100),
	}

	got := calc.ItemProfit(sale, item, testProduct())
	assert.True(t, got.Premium.IsZero(), "pago parcial no genera premium")
}

// ──────────────────────────────────────────────────────────────────────────────
// Degradación: datos malos nunca tumban el agregado
// ──────────────────────────────────────────────────────────────────────────────

func TestItemProfit_SinTasa_PremiumDegradaACero(t *testing.T) {
	calc := newCalculator("0", "0")
	sale := &entity.Sale{
		Currency:    currency.SOS,
		TotalAmount: decimal.NewFromInt(320000),
		AmountPaid:  decimal.NewFromInt(320000),
	}
	item := &entity.SaleItem{
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(160000),
		TotalPrice: decimal.NewFromInt(320000),
	}

	got := calc.ItemProfit(sale, item, testProduct())

	// La base no necesita conversión y sobrevive; el premium degrada.
	assert.True(t, d("20").Equal(got.Base))
	assert.True(t, got.Premium.IsZero())
}

func TestItemProfit_ProductoNil_DegradaACero(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{Currency: currency.USD, TotalAmount: decimal.NewFromInt(10), AmountPaid: decimal.NewFromInt(10)}
	item := &entity.SaleItem{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(10)}

	got := calc.ItemProfit(sale, item, nil)
	assert.True(t, got.Total.IsZero())
}

func TestItemProfit_CantidadCero_DegradaACero(t *testing.T) {
	calc := newCalculator("8000", "140")
	sale := &entity.Sale{Currency: currency.USD, TotalAmount: decimal.NewFromInt(10), AmountPaid: decimal.NewFromInt(10)}
	item := &entity.SaleItem{Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(10)}

	got := calc.ItemProfit(sale, item, testProduct())
	assert.True(t, got.Total.IsZero())
}
