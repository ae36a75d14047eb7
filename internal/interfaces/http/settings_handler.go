package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-pos/internal/application/dto"
	"github.com/jhoicas/Tienda-pos/internal/application/settings"
	"github.com/jhoicas/Tienda-pos/internal/domain"
)

// SettingsHandler maneja la configuración del tipo de cambio.
type SettingsHandler struct {
	uc *settings.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetExchangeRate godoc
// @Summary      Tipo de cambio USD→CUP vigente
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExchangeRateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/exchange-rate [get]
func (h *SettingsHandler) GetExchangeRate(c *fiber.Ctx) error {
	out, err := h.uc.GetExchangeRate()
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no inicializada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateExchangeRate godoc
// @Summary      Actualizar el tipo de cambio (solo admin)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateExchangeRateRequest  true  "Nuevo tipo de cambio"
// @Success      200   {object}  dto.ExchangeRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/settings/exchange-rate [put]
func (h *SettingsHandler) UpdateExchangeRate(c *fiber.Ctx) error {
	var in dto.UpdateExchangeRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateExchangeRate(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el tipo de cambio debe ser mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
