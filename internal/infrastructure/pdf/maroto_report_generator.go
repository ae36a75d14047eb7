// Package pdf implementa la exportación del historial de ventas como
// documento paginado (tamaño carta): título, cabecera de columnas, una fila
// por venta con los valores ya truncados al ancho de pantalla, y salto de
// página automático cuando se agota el espacio vertical.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/application/reports"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorHeader = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter formatea montos con separadores de miles en español.
var moneyPrinter = message.NewPrinter(language.Spanish)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF del listado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, items []dto.SaleHistoryItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(detailRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorHeader, Top: 1,
			}),
		),
	)
}

// tableHeaderRow: las mismas columnas del historial en pantalla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorHeader, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Producto", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Total", 1, align.Right),
		h("Fecha", 2, align.Left),
		h("Cliente", 2, align.Left),
		h("CI", 1, align.Left),
		h("Dirección", 1, align.Left),
		h("Vendedor", 1, align.Left),
	)
}

func detailRow(it dto.SaleHistoryItem) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		c(fmt.Sprintf("%d", it.SaleID), 1, align.Left),
		c(it.ProductName, 2, align.Left),
		c(fmt.Sprintf("%d", it.Quantity), 1, align.Right),
		c(formatMoney(it.Total), 1, align.Right),
		c(it.SoldAt, 2, align.Left),
		c(it.CustomerName, 2, align.Left),
		c(it.CustomerID, 1, align.Left),
		c(it.CustomerAddress, 1, align.Left),
		c(it.SellerName, 1, align.Left),
	)
}

// totalRow: suma de los totales listados, alineada a la derecha.
func totalRow(items []dto.SaleHistoryItem) core.Row {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Total general: "+formatMoney(sum), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}

func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}
