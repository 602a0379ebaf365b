package repository

import "github.com/zackv/zvshop-api/internal/domain/entity"

// SettingsRepository define el puerto de la fila única de configuración
// de monedas.
type SettingsRepository interface {
	Get() (*entity.CurrencySettings, error)
	Save(settings *entity.CurrencySettings) error
}
