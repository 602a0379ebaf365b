package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/inventory"
)

// InventoryHandler maneja reposiciones, historial y reconciliación (protegido).
type InventoryHandler struct {
	restockUC   *inventory.RestockUseCase
	reconcileUC *inventory.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(restockUC *inventory.RestockUseCase, reconcileUC *inventory.ReconcileUseCase) *InventoryHandler {
	return &InventoryHandler{restockUC: restockUC, reconcileUC: reconcileUC}
}

// Restock repone stock de un producto.
// POST /api/products/:id/restock
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.restockUC.Restock(c.Context(), c.Params("id"), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History devuelve el libro de inventario de un producto.
// GET /api/products/:id/inventory
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.restockUC.History(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reconcile verifica (o repara con ?fix=true) los desvíos de stock (solo ADMIN).
// POST /api/inventory/reconcile
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	fix := c.QueryBool("fix", false)
	out, err := h.reconcileUC.Reconcile(c.Context(), fix)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
