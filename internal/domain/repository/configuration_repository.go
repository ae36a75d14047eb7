package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
)

// ConfigurationRepository puerto para la fila única de configuración.
type ConfigurationRepository interface {
	Get() (*entity.Configuration, error)
	UpdateExchangeRate(rate decimal.Decimal) error
}
