package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el historial de ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesHistory une cada venta con el nombre del producto y del vendedor.
// LEFT JOIN a propósito: una venta cuyo producto fue borrado del catálogo
// sigue apareciendo (con nombre vacío) en lugar de desaparecer del historial.
// El rango de fechas es [from, to): la cota superior exclusiva evita perder
// ventas con fracción de segundo dentro del último segundo del día.
func (r *ReportRepo) SalesHistory(ctx context.Context, productFilter string, from, to *time.Time) ([]repository.SaleHistoryRow, error) {
	query := `
	SELECT
	    s.id,
	    COALESCE(p.name, '') AS product_name,
	    s.quantity,
	    s.total,
	    s.sold_at,
	    s.customer_name,
	    s.customer_id,
	    s.customer_address,
	    COALESCE(u.username, '') AS seller_name
	FROM sales s
	LEFT JOIN products p ON p.id = s.product_id
	LEFT JOIN users    u ON u.id = s.seller_id
	WHERE 1=1`
	args := []any{}

	if productFilter != "" {
		args = append(args, productFilter)
		query += fmt.Sprintf(" AND p.name LIKE '%%' || $%d || '%%'", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND s.sold_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND s.sold_at < $%d", len(args))
	}
	query += " ORDER BY s.sold_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesHistory: %w", err)
	}
	defer rows.Close()

	var result []repository.SaleHistoryRow
	for rows.Next() {
		var row repository.SaleHistoryRow
		if err := rows.Scan(
			&row.SaleID,
			&row.ProductName,
			&row.Quantity,
			&row.Total,
			&row.SoldAt,
			&row.CustomerName,
			&row.CustomerID,
			&row.CustomerAddress,
			&row.SellerName,
		); err != nil {
			return nil, fmt.Errorf("reports.SalesHistory scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// TotalBetween suma los totales del período [from, to]. COALESCE devuelve
// cero si el período no tiene ventas.
func (r *ReportRepo) TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE sold_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.TotalBetween: %w", err)
	}
	return total, nil
}
