package settings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/domain"
	"github.com/zackv/zvshop-api/internal/domain/currency"
	"github.com/zackv/zvshop-api/internal/domain/repository"
)

// UseCase administra la fila única de tasas de cambio. Solo se aceptan las
// direcciones USD→X; las recíprocas son derivadas y se recalculan en cada
// escritura.
type UseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(settingsRepo repository.SettingsRepository) *UseCase {
	return &UseCase{settingsRepo: settingsRepo}
}

// Get devuelve la configuración vigente.
func (uc *UseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingsResponse{
		USDToSOSRate: s.USDToSOSRate,
		SOSToUSDRate: s.SOSToUSDRate,
		USDToETBRate: s.USDToETBRate,
		ETBToUSDRate: s.ETBToUSDRate,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

// UpdateRates fija las tasas vigentes. Tasas no positivas se rechazan; las
// ventas ETB ya registradas no se ven afectadas (su tasa quedó congelada).
func (uc *UseCase) UpdateRates(ctx context.Context, userID string, in dto.UpdateRatesRequest) (*dto.SettingsResponse, error) {
	if in.USDToSOSRate == nil && in.USDToETBRate == nil {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.USDToSOSRate != nil {
		if !in.USDToSOSRate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		s.USDToSOSRate = *in.USDToSOSRate
	}
	if in.USDToETBRate != nil {
		if !in.USDToETBRate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		s.USDToETBRate = *in.USDToETBRate
	}
	s.RecalcReciprocals()
	s.UpdatedByID = &userID
	s.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Save(s); err != nil {
		return nil, err
	}
	return uc.Get(ctx)
}

// Provider adapta el repositorio de settings al RateProvider del conversor.
type Provider struct {
	settingsRepo repository.SettingsRepository
}

// NewProvider construye el adaptador.
func NewProvider(settingsRepo repository.SettingsRepository) *Provider {
	return &Provider{settingsRepo: settingsRepo}
}

// CurrentRates implementa currency.RateProvider.
func (p *Provider) CurrentRates() (currency.Rates, error) {
	s, err := p.settingsRepo.Get()
	if err != nil {
		return currency.Rates{}, err
	}
	if s == nil {
		return currency.Rates{}, domain.ErrRateNotConfigured
	}
	return currency.Rates{
		USDToSOS: s.USDToSOSRate,
		USDToETB: s.USDToETBRate,
	}, nil
}
