package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/domain"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
)

// dateLayout formato de las cotas from/to (granularidad de día).
const dateLayout = "2006-01-02"

// displayWidth ancho máximo de un campo en el reporte exportado. Los valores
// más largos se truncan a displayWidth-3 caracteres más "...".
const displayWidth = 15

// ReportUseCase lector de reportes: historial de ventas, totales por período y
// exportación a PDF. Solo lectura; no participa en el flujo transaccional.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  PDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// SalesHistory devuelve el historial filtrado, ordenado por fecha descendente.
// Las cotas de día son inclusivas: from se expande al inicio del día y to a
// una cota exclusiva en la medianoche del día siguiente, de modo que el día
// final entra completo (incluidos timestamps con fracción de segundo).
func (uc *ReportUseCase) SalesHistory(ctx context.Context, in dto.SalesHistoryRequest) (*dto.SalesHistoryResponse, error) {
	from, to, err := parseDayBounds(in.From, in.To)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.SalesHistory(ctx, in.ProductFilter, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleHistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toHistoryItem(r))
	}
	return &dto.SalesHistoryResponse{Items: items, Total: len(items)}, nil
}

// Totals suma los totales de hoy o del mes en curso.
func (uc *ReportUseCase) Totals(ctx context.Context, period string) (*dto.TotalsResponse, error) {
	now := time.Now()
	var from time.Time
	var label string
	switch period {
	case dto.PeriodToday:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		label = now.Format(dateLayout)
	case dto.PeriodMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		label = now.Format("2006-01")
	default:
		return nil, domain.ErrInvalidInput
	}
	total, err := uc.repo.TotalBetween(ctx, from, now)
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{Period: period, Label: label, Total: total}, nil
}

// Export consulta el historial con los mismos filtros, trunca cada campo al
// ancho de pantalla y delega el render al generador de documentos.
func (uc *ReportUseCase) Export(ctx context.Context, in dto.SalesHistoryRequest) ([]byte, error) {
	history, err := uc.SalesHistory(ctx, in)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleHistoryItem, len(history.Items))
	for i, it := range history.Items {
		it.ProductName = Truncate(it.ProductName)
		it.CustomerName = Truncate(it.CustomerName)
		it.CustomerID = Truncate(it.CustomerID)
		it.CustomerAddress = Truncate(it.CustomerAddress)
		it.SellerName = Truncate(it.SellerName)
		items[i] = it
	}
	return uc.pdf.GenerateSalesReport(ctx, items)
}

// Truncate acorta un valor al ancho de pantalla del reporte: más de 15
// caracteres queda en los 12 primeros más "...".
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= displayWidth {
		return s
	}
	return string(r[:displayWidth-3]) + "..."
}

// parseDayBounds convierte cotas YYYY-MM-DD en instantes: from -> 00:00:00
// del día (inclusivo), to -> medianoche del día siguiente (exclusivo). La
// cota superior exclusiva cubre el último segundo completo del día: un
// timestamp 23:59:59.5 sigue dentro del rango. Vacío significa sin cota.
func parseDayBounds(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		d, err := time.ParseInLocation(dateLayout, fromStr, time.Local)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		from = &d
	}
	if toStr != "" {
		d, err := time.ParseInLocation(dateLayout, toStr, time.Local)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		end := d.Add(24 * time.Hour)
		to = &end
	}
	return from, to, nil
}

func toHistoryItem(r repository.SaleHistoryRow) dto.SaleHistoryItem {
	return dto.SaleHistoryItem{
		SaleID:          r.SaleID,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		Total:           r.Total,
		SoldAt:          dto.FormatTimestamp(r.SoldAt),
		CustomerName:    r.CustomerName,
		CustomerID:      r.CustomerID,
		CustomerAddress: r.CustomerAddress,
		SellerName:      r.SellerName,
	}
}
