package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/domain/currency"
)

// Customer representa un cliente con saldos de deuda independientes por
// moneda. Las monedas son silos: nunca se mezclan implícitamente; comparar o
// agregar exige conversión explícita.
type Customer struct {
	ID               string
	Name             string
	Phone            string // único de facto, no garantizado históricamente
	Notes            string
	DebtUSD          decimal.Decimal
	DebtSOS          decimal.Decimal
	DebtETB          decimal.Decimal
	LastPurchaseDate *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DebtIn devuelve el saldo de deuda en la moneda indicada.
func (c *Customer) DebtIn(code currency.Code) decimal.Decimal {
	switch code {
	case currency.USD:
		return c.DebtUSD
	case currency.SOS:
		return c.DebtSOS
	case currency.ETB:
		return c.DebtETB
	}
	return decimal.Zero
}

// ApplyDebt suma (o resta, si delta es negativo) al saldo de la moneda dada.
// El saldo nunca queda negativo: el defecto se recorta a cero.
func (c *Customer) ApplyDebt(code currency.Code, delta decimal.Decimal) {
	newBalance := c.DebtIn(code).Add(delta)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	c.setDebt(code, newBalance)
}

// SetDebt fija el saldo de la moneda dada a un valor absoluto (corrección
// manual). Valores negativos se recortan a cero.
func (c *Customer) SetDebt(code currency.Code, amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	c.setDebt(code, amount)
}

func (c *Customer) setDebt(code currency.Code, amount decimal.Decimal) {
	switch code {
	case currency.USD:
		c.DebtUSD = amount
	case currency.SOS:
		c.DebtSOS = amount
	case currency.ETB:
		c.DebtETB = amount
	}
}

// HasDebt indica si el cliente debe en alguna moneda.
func (c *Customer) HasDebt() bool {
	return c.DebtUSD.GreaterThan(decimal.Zero) ||
		c.DebtSOS.GreaterThan(decimal.Zero) ||
		c.DebtETB.GreaterThan(decimal.Zero)
}
