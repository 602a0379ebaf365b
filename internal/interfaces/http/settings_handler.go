package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/settings"
)

// SettingsHandler maneja la configuración de tasas de cambio (solo ADMIN).
type SettingsHandler struct {
	uc *settings.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devuelve las tasas vigentes.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRates godoc
// @Summary      Actualiza las tasas de cambio USD→SOS y/o USD→ETB
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        request  body  dto.UpdateRatesRequest  true  "Tasas nuevas"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/rates [put]
func (h *SettingsHandler) UpdateRates(c *fiber.Ctx) error {
	var req dto.UpdateRatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	out, err := h.uc.UpdateRates(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
