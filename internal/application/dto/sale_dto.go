package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteResponse total cotizado sin tocar stock. TotalCUP es el equivalente en
// CUP al tipo de cambio vigente cuando el producto está en USD.
type QuoteResponse struct {
	ProductID int64            `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	Total     decimal.Decimal  `json:"total"`
	Currency  string           `json:"currency"`
	TotalCUP  *decimal.Decimal `json:"total_cup,omitempty"`
}

// CreateSaleRequest entrada para confirmar una venta.
type CreateSaleRequest struct {
	ProductID       int64  `json:"product_id"`
	Quantity        int64  `json:"quantity"`
	CustomerName    string `json:"customer_name"`
	CustomerID      string `json:"customer_id"`
	CustomerAddress string `json:"customer_address"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	SoldAt          string          `json:"sold_at"` // YYYY-MM-DD HH:MM:SS
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerID      string          `json:"customer_id,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	SellerID        int64           `json:"seller_id"`
}

// TimestampLayout formato fijo y ordenable para mostrar fechas de venta.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp aplica el formato fijo de la aplicación.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
