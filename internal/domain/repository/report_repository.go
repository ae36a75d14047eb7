package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleHistoryRow fila del historial de ventas, ya unida con el nombre del
// producto y el del vendedor. ProductName queda vacío si el producto fue
// borrado del catálogo (la venta histórica sobrevive).
type SaleHistoryRow struct {
	SaleID          int64
	ProductName     string
	Quantity        int64
	Total           decimal.Decimal
	SoldAt          time.Time
	CustomerName    string
	CustomerID      string
	CustomerAddress string
	SellerName      string
}

// ReportRepository consultas de solo lectura sobre el historial de ventas.
type ReportRepository interface {
	// SalesHistory devuelve las ventas ordenadas por fecha descendente.
	// productFilter es substring sobre el nombre del producto (vacío = todas);
	// from acota sold_at de forma inclusiva y to de forma exclusiva cuando
	// no son nil (rango [from, to)).
	SalesHistory(ctx context.Context, productFilter string, from, to *time.Time) ([]SaleHistoryRow, error)
	// TotalBetween suma los totales de las ventas con sold_at en [from, to].
	// Devuelve cero si no hay ventas en el período.
	TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
