package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/application/reports"
	"github.com/jhoicas/Tienda-pos/internal/domain"
)

// ReportHandler maneja historial de ventas, totales y exportación a PDF.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func historyRequest(c *fiber.Ctx) dto.SalesHistoryRequest {
	return dto.SalesHistoryRequest{
		ProductFilter: c.Query("product"),
		From:          c.Query("from"),
		To:            c.Query("to"),
	}
}

// History godoc
// @Summary      Historial de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtro por nombre de producto"
// @Param        from     query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.SalesHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.SalesHistory(c.Context(), historyRequest(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las fechas deben tener formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Total vendido hoy o en el mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "today | month"
// @Success      200  {object}  dto.TotalsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/totals [get]
func (h *ReportHandler) Totals(c *fiber.Ctx) error {
	out, err := h.uc.Totals(c.Context(), c.Query("period"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser today o month"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar el historial de ventas a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        product  query  string  false  "Filtro por nombre de producto"
// @Param        from     query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.Context(), historyRequest(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las fechas deben tener formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_ventas.pdf"`)
	return c.Send(out)
}
