package reports

import (
	"context"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
)

// PDFGenerator renderiza el listado de ventas como documento paginado.
// Recibe filas ya consultadas y ya truncadas al ancho de pantalla; cualquier
// renderer que produzca una tabla legible sirve.
type PDFGenerator interface {
	GenerateSalesReport(ctx context.Context, items []dto.SaleHistoryItem) ([]byte, error)
}
