package settings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/application/settings"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
)

type fakeConfigRepo struct {
	cfg *entity.Configuration
}

func (f *fakeConfigRepo) Get() (*entity.Configuration, error) { return f.cfg, nil }

func (f *fakeConfigRepo) UpdateExchangeRate(rate decimal.Decimal) error {
	f.cfg = &entity.Configuration{ExchangeRate: rate, UpdatedAt: time.Now()}
	return nil
}

func TestGetExchangeRate_DevuelveElVigente(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &entity.Configuration{
		ExchangeRate: decimal.RequireFromString("24.0"),
		UpdatedAt:    time.Now(),
	}}
	uc := settings.NewSettingsUseCase(repo)

	out, err := uc.GetExchangeRate()
	require.NoError(t, err)
	assert.True(t, out.ExchangeRate.Equal(decimal.RequireFromString("24.0")))
}

func TestGetExchangeRate_SinConfiguracion_EsNotFound(t *testing.T) {
	uc := settings.NewSettingsUseCase(&fakeConfigRepo{})

	_, err := uc.GetExchangeRate()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateExchangeRate_PersisteYDevuelveElNuevo(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &entity.Configuration{ExchangeRate: decimal.RequireFromString("24.0")}}
	uc := settings.NewSettingsUseCase(repo)

	out, err := uc.UpdateExchangeRate(dto.UpdateExchangeRateRequest{
		ExchangeRate: decimal.RequireFromString("118.5"),
	})
	require.NoError(t, err)
	assert.True(t, out.ExchangeRate.Equal(decimal.RequireFromString("118.5")))
	assert.True(t, repo.cfg.ExchangeRate.Equal(decimal.RequireFromString("118.5")))
}

func TestUpdateExchangeRate_DebeSerPositivo(t *testing.T) {
	uc := settings.NewSettingsUseCase(&fakeConfigRepo{})

	_, err := uc.UpdateExchangeRate(dto.UpdateExchangeRateRequest{ExchangeRate: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateExchangeRate(dto.UpdateExchangeRateRequest{
		ExchangeRate: decimal.RequireFromString("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
