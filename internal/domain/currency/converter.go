package currency

import (
	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain"
)

// Rates es la foto de las tasas globales vigentes (1 USD = X moneda).
type Rates struct {
	USDToSOS decimal.Decimal
	USDToETB decimal.Decimal
}

// RateProvider entrega las tasas globales vigentes. La implementación vive en
// infrastructure (fila singleton en PostgreSQL); inyectarla evita estado
// global mutable.
type RateProvider interface {
	CurrentRates() (Rates, error)
}

// Converter convierte montos entre monedas usando las tasas del provider o,
// si se indica, una tasa congelada al momento de la venta.
//
// Camino de lectura (reportes): una tasa cero o negativa degrada a cero en vez
// de fallar, para que un registro histórico corrupto no tumbe un agregado.
// Camino de escritura: usar RateForSale, que sí rechaza tasas no positivas.
type Converter struct {
	provider RateProvider
}

// NewConverter construye el conversor con el provider de tasas.
func NewConverter(provider RateProvider) *Converter {
	return &Converter{provider: provider}
}

// rateFor resuelve la tasa 1 USD = X para la moneda dada. override > 0 tiene
// prioridad (tasa congelada de una venta ETB).
func (cv *Converter) rateFor(code Code, override decimal.Decimal) decimal.Decimal {
	if code.IsBase() {
		return decimal.NewFromInt(1)
	}
	if override.GreaterThan(decimal.Zero) {
		return override
	}
	rates, err := cv.provider.CurrentRates()
	if err != nil {
		return decimal.Zero
	}
	switch code {
	case SOS:
		return rates.USDToSOS
	case ETB:
		return rates.USDToETB
	}
	return decimal.Zero
}

// ToUSD convierte un monto en la moneda dada a USD. Tasa no positiva => cero.
func (cv *Converter) ToUSD(amount decimal.Decimal, code Code, override decimal.Decimal) decimal.Decimal {
	if code.IsBase() {
		return amount
	}
	rate := cv.rateFor(code, override)
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return amount.Div(rate)
}

// FromUSD convierte un monto en USD a la moneda dada. Tasa no positiva => cero.
func (cv *Converter) FromUSD(amount decimal.Decimal, code Code, override decimal.Decimal) decimal.Decimal {
	if code.IsBase() {
		return amount
	}
	rate := cv.rateFor(code, override)
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return amount.Mul(rate)
}

// RateForSale resuelve la tasa vigente para crear una venta en la moneda dada.
// A diferencia del camino de lectura, una tasa ausente o no positiva es un
// error de configuración que bloquea la escritura.
func (cv *Converter) RateForSale(code Code) (decimal.Decimal, error) {
	if code.IsBase() {
		return decimal.NewFromInt(1), nil
	}
	rates, err := cv.provider.CurrentRates()
	if err != nil {
		return decimal.Zero, err
	}
	var rate decimal.Decimal
	switch code {
	case SOS:
		rate = rates.USDToSOS
	case ETB:
		rate = rates.USDToETB
	}
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrRateNotConfigured
	}
	return rate, nil
}
