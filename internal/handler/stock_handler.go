package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StockHandler exposes the stock adjustment log. Entries cannot be edited.
type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// GET /api/v1/stock-adjustments?product_id=
func (h *StockHandler) GetAdjustments(c *fiber.Ctx) error {
	productID, err := parseUUIDQuery(c, "product_id")
	if err != nil {
		return badRequest(c, "Invalid product_id")
	}

	adjustments, err := h.service.ListAdjustments(repository.StockAdjustmentFilter{ProductID: productID})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(adjustments)
}

// GET /api/v1/stock-adjustments/:id
func (h *StockHandler) GetAdjustment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid adjustment ID")
	}

	adj, err := h.service.GetAdjustment(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(adj)
}

// POST /api/v1/stock-adjustments
func (h *StockHandler) CreateAdjustment(c *fiber.Ctx) error {
	var adj model.StockAdjustment
	if err := c.BodyParser(&adj); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.RecordAdjustment(&adj, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Stock adjustment recorded", "data": adj})
}

// DELETE /api/v1/stock-adjustments/:id
func (h *StockHandler) DeleteAdjustment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid adjustment ID")
	}

	if err := h.service.DeleteAdjustment(id, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Stock adjustment deleted"})
}
