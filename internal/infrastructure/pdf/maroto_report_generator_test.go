package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/infrastructure/pdf"
)

func TestGenerateSalesReport_ProduceUnPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	items := []dto.SaleHistoryItem{
		{
			SaleID:       1,
			ProductName:  "Arroz",
			Quantity:     3,
			Total:        decimal.RequireFromString("6.00"),
			SoldAt:       "2026-03-02 14:30:05",
			CustomerName: "Maria",
			SellerName:   "admin",
		},
		{
			SaleID:      2,
			ProductName: "Aceite",
			Quantity:    1,
			Total:       decimal.RequireFromString("3.50"),
			SoldAt:      "2026-03-02 15:00:00",
			SellerName:  "admin",
		},
	}

	out, err := g.GenerateSalesReport(context.Background(), items)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un documento PDF")
}

func TestGenerateSalesReport_SinVentas_TambienGenera(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	out, err := g.GenerateSalesReport(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out, "un historial vacío genera el documento con solo la cabecera")
}
