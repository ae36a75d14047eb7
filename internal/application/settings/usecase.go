package settings

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

// SettingsUseCase lectura y actualización del tipo de cambio CUP/USD.
// La restricción a rol admin se aplica en la ruta (RequireRole), no aquí.
type SettingsUseCase struct {
	repo repository.ConfigurationRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.ConfigurationRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetExchangeRate devuelve el tipo de cambio vigente.
func (uc *SettingsUseCase) GetExchangeRate() (*dto.ExchangeRateResponse, error) {
	cfg, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ExchangeRateResponse{ExchangeRate: cfg.ExchangeRate, UpdatedAt: cfg.UpdatedAt}, nil
}

// UpdateExchangeRate fija un nuevo tipo de cambio. Debe ser estrictamente positivo.
func (uc *SettingsUseCase) UpdateExchangeRate(in dto.UpdateExchangeRateRequest) (*dto.ExchangeRateResponse, error) {
	if !in.ExchangeRate.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateExchangeRate(in.ExchangeRate); err != nil {
		return nil, err
	}
	return uc.GetExchangeRate()
}
