package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySettings es la configuración singleton de tasas de cambio. Los
// recíprocos se recalculan en cada escritura como 1/tasa (con guarda para
// tasas no positivas); nunca se aceptan del exterior.
type CurrencySettings struct {
	ID           string
	USDToSOSRate decimal.Decimal
	SOSToUSDRate decimal.Decimal // derivado
	USDToETBRate decimal.Decimal
	ETBToUSDRate decimal.Decimal // derivado
	UpdatedByID  *string
	UpdatedAt    time.Time
}

// RecalcReciprocals recalcula los recíprocos derivados. Tasas no positivas
// dejan el recíproco en cero en vez de dividir por cero.
func (s *CurrencySettings) RecalcReciprocals() {
	one := decimal.NewFromInt(1)
	if s.USDToSOSRate.GreaterThan(decimal.Zero) {
		s.SOSToUSDRate = one.DivRound(s.USDToSOSRate, 6)
	} else {
		s.SOSToUSDRate = decimal.Zero
	}
	if s.USDToETBRate.GreaterThan(decimal.Zero) {
		s.ETBToUSDRate = one.DivRound(s.USDToETBRate, 6)
	} else {
		s.ETBToUSDRate = decimal.Zero
	}
}
