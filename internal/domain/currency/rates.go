package currency

import "github.com/shopspring/decimal"

// Rate expone la tasa resuelta (1 USD = X) para la moneda dada, con la misma
// semántica de override que ToUSD/FromUSD. Devuelve cero si la tasa no está
// disponible o no es positiva; los caminos de lectura deben tratar ese cero
// como "degradar, no fallar".
func (cv *Converter) Rate(code Code, override decimal.Decimal) decimal.Decimal {
	rate := cv.rateFor(code, override)
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return rate
}
