package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration es la fila única de configuración de la tienda.
// ExchangeRate son CUP por USD; solo un admin puede modificarla.
type Configuration struct {
	ExchangeRate decimal.Decimal
	UpdatedAt    time.Time
}
