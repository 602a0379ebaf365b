package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
)

// fakeProvider entrega tasas fijas para los tests.
type fakeProvider struct {
	rates currency.Rates
	err   error
}

func (f *fakeProvider) CurrentRates() (currency.Rates, error) {
	return f.rates, f.err
}

func newConverter(usdToSOS, usdToETB string) *currency.Converter {
	return currency.NewConverter(&fakeProvider{rates: currency.Rates{
		USDToSOS: decimal.RequireFromString(usdToSOS),
		USDToETB: decimal.RequireFromString(usdToETB),
	}})
}

// ──────────────────────────────────────────────────────────────────────────────
// Parse y estrategias por moneda
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_MonedasSoportadas(t *testing.T) {
	for _, s := range []string{"USD", "SOS", "ETB"} {
		code, err := currency.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, code.String())
	}
}

func TestParse_MonedaDesconocida_RetornaError(t *testing.T) {
	_, err := currency.Parse("EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = currency.Parse("usd") // sensible a mayúsculas
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEstrategias_SoloETBCongelaTasa(t *testing.T) {
	assert.False(t, currency.USD.FreezesRate())
	assert.False(t, currency.SOS.FreezesRate())
	assert.True(t, currency.ETB.FreezesRate())

	assert.True(t, currency.USD.IsBase())
	assert.False(t, currency.SOS.IsBase())
	assert.False(t, currency.ETB.IsBase())
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión (camino de lectura: degrada a cero, nunca falla)
// ──────────────────────────────────────────────────────────────────────────────

func TestToUSD_USDEsIdentidad(t *testing.T) {
	cv := newConverter("27000", "140")
	amount := decimal.RequireFromString("123.45")
	assert.True(t, amount.Equal(cv.ToUSD(amount, currency.USD, decimal.Zero)))
}

func TestToUSD_SOSUsaTasaGlobal(t *testing.T) {
	cv := newConverter("27000", "140")
	got := cv.ToUSD(decimal.NewFromInt(54000), currency.SOS, decimal.Zero)
	assert.True(t, decimal.NewFromInt(2).Equal(got), "54000 SOS a 27000 = 2 USD, got %s", got)
}

func TestToUSD_ETBPrefiereTasaCongelada(t *testing.T) {
	// Tasa global 140, pero la venta congeló 100: manda la congelada.
	cv := newConverter("27000", "140")
	got := cv.ToUSD(decimal.NewFromInt(500), currency.ETB, decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(5).Equal(got))
}

func TestToUSD_SinTasa_DegradaACero(t *testing.T) {
	cv := newConverter("0", "0")
	got := cv.ToUSD(decimal.NewFromInt(1000), currency.SOS, decimal.Zero)
	assert.True(t, got.IsZero(), "sin tasa configurada el monto degrada a cero")
}

func TestToUSD_ProviderConError_DegradaACero(t *testing.T) {
	cv := currency.NewConverter(&fakeProvider{err: domain.ErrRateNotConfigured})
	got := cv.ToUSD(decimal.NewFromInt(1000), currency.ETB, decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestFromUSD_RoundTripSOS(t *testing.T) {
	cv := newConverter("27000", "140")
	usd := decimal.RequireFromString("3.50")
	sos := cv.FromUSD(usd, currency.SOS, decimal.Zero)
	assert.True(t, decimal.NewFromInt(94500).Equal(sos))
	assert.True(t, usd.Equal(cv.ToUSD(sos, currency.SOS, decimal.Zero)))
}

func TestRate_ExponeTasaResuelta(t *testing.T) {
	cv := newConverter("27000", "140")
	assert.True(t, decimal.NewFromInt(1).Equal(cv.Rate(currency.USD, decimal.Zero)))
	assert.True(t, decimal.NewFromInt(27000).Equal(cv.Rate(currency.SOS, decimal.Zero)))
	assert.True(t, decimal.NewFromInt(95).Equal(cv.Rate(currency.ETB, decimal.NewFromInt(95))))
}

// ──────────────────────────────────────────────────────────────────────────────
// RateForSale (camino de escritura: tasa ausente bloquea)
// ──────────────────────────────────────────────────────────────────────────────

func TestRateForSale_USDSiempreUno(t *testing.T) {
	cv := newConverter("0", "0") // ni siquiera necesita tasas
	rate, err := cv.RateForSale(currency.USD)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(rate))
}

func TestRateForSale_TasaConfigurada(t *testing.T) {
	cv := newConverter("27000", "140")

	rate, err := cv.RateForSale(currency.SOS)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(27000).Equal(rate))

	rate, err = cv.RateForSale(currency.ETB)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(140).Equal(rate))
}

func TestRateForSale_TasaEnCero_BloqueaVenta(t *testing.T) {
	cv := newConverter("27000", "0")
	_, err := cv.RateForSale(currency.ETB)
	assert.ErrorIs(t, err, domain.ErrRateNotConfigured,
		"una venta en moneda sin tasa configurada debe rechazarse, no degradar")
}

func TestRateForSale_ProviderConError_Propaga(t *testing.T) {
	cv := currency.NewConverter(&fakeProvider{err: domain.ErrRateNotConfigured})
	_, err := cv.RateForSale(currency.SOS)
	assert.Error(t, err)
}
