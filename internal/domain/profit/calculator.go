package profit

import (
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/pkg/logger"
)

// Breakdown es la descomposición de la ganancia de una línea, siempre en USD.
type Breakdown struct {
	Base    decimal.Decimal // (precio piso - costo) × cantidad
	Premium decimal.Decimal // vendido sobre el piso + parte del sobrepago
	Total   decimal.Decimal // Base + Premium
}

// Calculator descompone la ganancia de cada línea de venta en USD,
// independiente de la moneda de la transacción. Las ventas ETB convierten con
// la tasa congelada en la venta; USD/SOS usan la tasa global vigente.
//
// Cualquier fallo de conversión o dato faltante degrada la línea a ganancia
// cero (con log) en lugar de propagar error: un registro histórico malo no
// puede tumbar un reporte agregado.
type Calculator struct {
	conv *currency.Converter
	log  *logger.Logger
}

// NewCalculator construye el calculador.
func NewCalculator(conv *currency.Converter, log *logger.Logger) *Calculator {
	return &Calculator{conv: conv, log: log}
}

// Line empareja un renglón con su producto para el cálculo por venta.
type Line struct {
	Item    *entity.SaleItem
	Product *entity.Product
}

// ItemProfit calcula la descomposición de ganancia de una línea.
//
// El sobrepago de la venta (pagado > total) se reparte entre las líneas a
// prorrata del total de cada línea, de modo que la suma por líneas iguale el
// sobrepago de la venta exactamente una vez. (El comportamiento heredado
// atribuía el sobrepago completo a cada línea, duplicándolo en ventas
// multilínea; aquí se reparte.) Como cada línea se redondea por separado,
// la suma puede desviarse del sobrepago por un centavo; para agregados por
// venta usar SaleProfit, que asigna ese residuo a la última línea.
func (c *Calculator) ItemProfit(sale *entity.Sale, item *entity.SaleItem, product *entity.Product) Breakdown {
	base := c.baseProfit(item, product)
	premium := c.premiumProfit(sale, item, product)
	return Breakdown{
		Base:    base,
		Premium: premium,
		Total:   base.Add(premium),
	}
}

// baseProfit = (precio piso USD - costo USD) × cantidad, redondeado a 2
// decimales half-up.
func (c *Calculator) baseProfit(item *entity.SaleItem, product *entity.Product) decimal.Decimal {
	if product == nil || !item.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	if product.PurchasePrice.IsZero() && product.SellingPrice.IsZero() {
		return decimal.Zero
	}
	return product.SellingPrice.Sub(product.PurchasePrice).Mul(item.Quantity).Round(2)
}

// premiumProfit = (precio real USD - piso USD) × cantidad + parte del
// sobrepago de la venta, todo en USD y redondeado a 2 decimales half-up.
func (c *Calculator) premiumProfit(sale *entity.Sale, item *entity.SaleItem, product *entity.Product) decimal.Decimal {
	if sale == nil || product == nil || !item.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	if !item.UnitPrice.GreaterThan(decimal.Zero) || !product.SellingPrice.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}

	override := decimal.Zero
	if sale.Currency.FreezesRate() {
		override = sale.ExchangeRateAtSale
	}
	rate := c.conv.Rate(sale.Currency, override)
	if rate.IsZero() {
		c.log.Warn().
			Str("sale_id", sale.ID).
			Str("currency", sale.Currency.String()).
			Msg("sin tasa de cambio para calcular ganancia; línea degradada a cero")
		return decimal.Zero
	}

	actualUSD := item.Quantity.Mul(item.UnitPrice).Div(rate)
	floorRevenueUSD := product.SellingPrice.Mul(item.Quantity)
	premium := actualUSD.Sub(floorRevenueUSD)

	premium = premium.Add(c.overpaymentShareUSD(sale, item, rate))
	return premium.Round(2)
}

// overpaymentShareUSD reparte el sobrepago de la venta entre sus líneas a
// prorrata del total de línea y lo convierte a USD.
func (c *Calculator) overpaymentShareUSD(sale *entity.Sale, item *entity.SaleItem, rate decimal.Decimal) decimal.Decimal {
	over := sale.Overpayment()
	if over.IsZero() || !sale.TotalAmount.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	share := over.Mul(item.TotalPrice).Div(sale.TotalAmount)
	return share.Div(rate)
}

// SaleProfit descompone todas las líneas de una venta en una pasada. El
// reparto del sobrepago redondea cada parte a 2 decimales y asigna el residuo
// a la última línea participante: la suma de los premiums contiene el
// sobrepago de la venta exactamente una vez, al centavo.
func (c *Calculator) SaleProfit(sale *entity.Sale, lines []Line) []Breakdown {
	out := make([]Breakdown, len(lines))
	for i, ln := range lines {
		out[i].Base = c.baseProfit(ln.Item, ln.Product)
		out[i].Total = out[i].Base
	}
	if sale == nil {
		return out
	}

	override := decimal.Zero
	if sale.Currency.FreezesRate() {
		override = sale.ExchangeRateAtSale
	}
	rate := c.conv.Rate(sale.Currency, override)
	if rate.IsZero() {
		c.log.Warn().
			Str("sale_id", sale.ID).
			Str("currency", sale.Currency.String()).
			Msg("sin tasa de cambio para calcular ganancia; premiums degradados a cero")
		return out
	}

	var eligible []int
	for i, ln := range lines {
		if premiumEligible(ln.Item, ln.Product) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return out
	}

	overUSD := decimal.Zero
	if sale.TotalAmount.GreaterThan(decimal.Zero) {
		overUSD = sale.Overpayment().Div(rate).Round(2)
	}

	allocated := decimal.Zero
	for n, i := range eligible {
		item, product := lines[i].Item, lines[i].Product
		actualUSD := item.Quantity.Mul(item.UnitPrice).Div(rate)
		aboveFloor := actualUSD.Sub(product.SellingPrice.Mul(item.Quantity)).Round(2)

		share := decimal.Zero
		if !overUSD.IsZero() {
			share = overUSD.Mul(item.TotalPrice).Div(sale.TotalAmount).Round(2)
		}
		if n == len(eligible)-1 {
			share = overUSD.Sub(allocated)
		}
		allocated = allocated.Add(share)

		out[i].Premium = aboveFloor.Add(share)
		out[i].Total = out[i].Base.Add(out[i].Premium)
	}
	return out
}

func premiumEligible(item *entity.SaleItem, product *entity.Product) bool {
	if product == nil || !item.Quantity.GreaterThan(decimal.Zero) {
		return false
	}
	return item.UnitPrice.GreaterThan(decimal.Zero) && product.SellingPrice.GreaterThan(decimal.Zero)
}
