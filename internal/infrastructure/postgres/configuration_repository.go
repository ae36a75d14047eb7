package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

var _ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)

// ConfigurationRepo acceso a la fila única de configuración.
type ConfigurationRepo struct {
	q Querier
}

// NewConfigurationRepository construye el adaptador de configuración.
func NewConfigurationRepository(q Querier) *ConfigurationRepo {
	return &ConfigurationRepo{q: q}
}

// Get devuelve la configuración; (nil, nil) si el bootstrap aún no corrió.
func (r *ConfigurationRepo) Get() (*entity.Configuration, error) {
	var c entity.Configuration
	err := r.q.QueryRow(context.Background(),
		`SELECT exchange_rate, updated_at FROM configuration WHERE id = 1`,
	).Scan(&c.ExchangeRate, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuration: %w", err)
	}
	return &c, nil
}

// UpdateExchangeRate fija el tipo de cambio CUP/USD.
func (r *ConfigurationRepo) UpdateExchangeRate(rate decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE configuration SET exchange_rate = $1, updated_at = now() WHERE id = 1`,
		rate,
	)
	if err != nil {
		return fmt.Errorf("update exchange rate: %w", err)
	}
	return nil
}
