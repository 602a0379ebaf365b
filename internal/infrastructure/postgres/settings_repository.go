package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// La tabla tiene una sola fila (id fijo 'global').
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración de monedas.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtiene la fila única de configuración.
func (r *SettingsRepo) Get() (*entity.CurrencySettings, error) {
	var s entity.CurrencySettings
	err := r.q.QueryRow(context.Background(),
		`SELECT id, usd_to_sos_rate, sos_to_usd_rate, usd_to_etb_rate, etb_to_usd_rate, updated_by_id, updated_at
		 FROM currency_settings WHERE id = 'global'`,
	).Scan(&s.ID, &s.USDToSOSRate, &s.SOSToUSDRate, &s.USDToETBRate, &s.ETBToUSDRate, &s.UpdatedByID, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency settings: %w", err)
	}
	return &s, nil
}

// Save upserta la fila única.
func (r *SettingsRepo) Save(settings *entity.CurrencySettings) error {
	query := `
		INSERT INTO currency_settings (id, usd_to_sos_rate, sos_to_usd_rate, usd_to_etb_rate, etb_to_usd_rate, updated_by_id, updated_at)
		VALUES ('global', $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			usd_to_sos_rate = EXCLUDED.usd_to_sos_rate,
			sos_to_usd_rate = EXCLUDED.sos_to_usd_rate,
			usd_to_etb_rate = EXCLUDED.usd_to_etb_rate,
			etb_to_usd_rate = EXCLUDED.etb_to_usd_rate,
			updated_by_id = EXCLUDED.updated_by_id,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.USDToSOSRate, settings.SOSToUSDRate, settings.USDToETBRate,
		settings.ETBToUSDRate, settings.UpdatedByID, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save currency settings: %w", err)
	}
	return nil
}
