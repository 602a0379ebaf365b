package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateRatesRequest entrada para fijar los tipos de cambio vigentes.
// Solo se aceptan las direcciones USD→X; las recíprocas se recalculan.
type UpdateRatesRequest struct {
	USDToSOSRate *decimal.Decimal `json:"usd_to_sos_rate"`
	USDToETBRate *decimal.Decimal `json:"usd_to_etb_rate"`
}

// SettingsResponse configuración de monedas vigente.
type SettingsResponse struct {
	USDToSOSRate decimal.Decimal `json:"usd_to_sos_rate"`
	SOSToUSDRate decimal.Decimal `json:"sos_to_usd_rate"`
	USDToETBRate decimal.Decimal `json:"usd_to_etb_rate"`
	ETBToUSDRate decimal.Decimal `json:"etb_to_usd_rate"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
