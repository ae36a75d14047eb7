package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateExchangeRateRequest nuevo tipo de cambio CUP/USD. Debe ser > 0.
type UpdateExchangeRateRequest struct {
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// ExchangeRateResponse tipo de cambio vigente.
type ExchangeRateResponse struct {
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
