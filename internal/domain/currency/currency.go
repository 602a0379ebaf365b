package currency

import "github.com/zackv/zvshop-api/internal/domain"

// Code identifica una familia de moneda. El conjunto es cerrado: toda la
// lógica por moneda pasa por la tabla de estrategias, nunca por comparaciones
// de strings repartidas por el código.
type Code string

const (
	USD Code = "USD" // Dólar estadounidense (moneda de referencia)
	SOS Code = "SOS" // Chelín somalí
	ETB Code = "ETB" // Birr etíope
)

// strategy define el comportamiento propio de cada familia de moneda.
type strategy struct {
	// freezeRate indica si la venta debe congelar la tasa de cambio vigente
	// al momento de crearse (solo ETB: su tasa es volátil y el cálculo de
	// ganancias debe usar la tasa histórica, no la actual).
	freezeRate bool
	// isBase indica la moneda de referencia (sin conversión).
	isBase bool
}

var strategies = map[Code]strategy{
	USD: {isBase: true},
	SOS: {},
	ETB: {freezeRate: true},
}

// All devuelve las monedas soportadas en orden estable.
func All() []Code {
	return []Code{USD, SOS, ETB}
}

// Parse valida un código de moneda recibido del exterior.
func Parse(s string) (Code, error) {
	c := Code(s)
	if _, ok := strategies[c]; !ok {
		return "", domain.ErrInvalidInput
	}
	return c, nil
}

// FreezesRate indica si las ventas en esta moneda congelan la tasa de cambio.
func (c Code) FreezesRate() bool {
	return strategies[c].freezeRate
}

// IsBase indica si la moneda es la de referencia (USD).
func (c Code) IsBase() bool {
	return strategies[c].isBase
}

// String implementa fmt.Stringer.
func (c Code) String() string { return string(c) }
