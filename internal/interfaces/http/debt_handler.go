package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zackv/zvshop-api/internal/application/debt"
	"github.com/zackv/zvshop-api/internal/application/dto"
)

// DebtHandler maneja abonos y correcciones de deuda (protegido).
type DebtHandler struct {
	paymentUC    *debt.RecordPaymentUseCase
	correctionUC *debt.CorrectDebtUseCase
}

// NewDebtHandler construye el handler.
func NewDebtHandler(paymentUC *debt.RecordPaymentUseCase, correctionUC *debt.CorrectDebtUseCase) *DebtHandler {
	return &DebtHandler{paymentUC: paymentUC, correctionUC: correctionUC}
}

// RecordPayment godoc
// @Summary      Abonar deuda de un cliente
// @Tags         debt
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.RecordPaymentRequest  true  "Abono"
// @Success      201   {object}  dto.RecordPaymentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/payments [post]
func (h *DebtHandler) RecordPayment(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.paymentUC.RecordPayment(c.Context(), c.Params("id"), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments lista los abonos de un cliente.
// GET /api/customers/:id/payments
func (h *DebtHandler) ListPayments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.paymentUC.ListPayments(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CorrectDebt fija la deuda agregada de un cliente a mano (solo ADMIN).
// POST /api/customers/:id/debt-corrections
func (h *DebtHandler) CorrectDebt(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CorrectDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.correctionUC.CorrectDebt(c.Context(), c.Params("id"), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCorrections lista el diario de correcciones de un cliente (solo ADMIN).
// GET /api/customers/:id/debt-corrections
func (h *DebtHandler) ListCorrections(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.correctionUC.ListCorrections(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
