package dto

import "github.com/shopspring/decimal"

// SalesHistoryRequest filtros del historial. From/To usan formato YYYY-MM-DD
// (granularidad de día); vacío = sin cota.
type SalesHistoryRequest struct {
	ProductFilter string `query:"product"`
	From          string `query:"from"`
	To            string `query:"to"`
}

// SaleHistoryItem fila del historial ya formateada para mostrar o exportar.
type SaleHistoryItem struct {
	SaleID          int64           `json:"sale_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int64           `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
	SoldAt          string          `json:"sold_at"` // YYYY-MM-DD HH:MM:SS
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerID      string          `json:"customer_id,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	SellerName      string          `json:"seller_name"`
}

// SalesHistoryResponse historial ordenado por fecha descendente.
type SalesHistoryResponse struct {
	Items []SaleHistoryItem `json:"items"`
	Total int               `json:"total"`
}

// Períodos soportados por el resumen de totales.
const (
	PeriodToday = "today"
	PeriodMonth = "month"
)

// TotalsResponse suma de totales del período.
type TotalsResponse struct {
	Period string          `json:"period"` // today | month
	Label  string          `json:"label"`  // YYYY-MM-DD o YYYY-MM
	Total  decimal.Decimal `json:"total"`
}
