package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// GetSales lists sales newest first. Query params: cashier, from, to
// GET /api/v1/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from", false)
	if err != nil {
		return badRequest(c, "Invalid 'from' date")
	}
	to, err := parseTimeQuery(c, "to", true)
	if err != nil {
		return badRequest(c, "Invalid 'to' date")
	}

	sales, err := h.service.ListSales(repository.SaleFilter{Cashier: c.Query("cashier"), From: from, To: to})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sales)
}

// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale ID")
	}

	sale, err := h.service.GetSale(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.CreateSale(&sale, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

// PUT /api/v1/sales/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale ID")
	}

	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateSale(id, &sale, getActor(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Sale updated", "data": updated})
}

// DELETE /api/v1/sales/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale ID")
	}

	if err := h.service.DeleteSale(id, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Sale deleted"})
}

// GET /api/v1/sales/:id/receipt
func (h *SaleHandler) GetReceipt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale ID")
	}

	receipt, err := h.service.GetReceipt(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(receipt)
}

// GET /api/v1/sales/:id/items
func (h *SaleHandler) GetSaleItems(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale ID")
	}

	if _, err := h.service.GetSale(id); err != nil {
		return writeError(c, err)
	}

	items, err := h.service.ListItems(repository.SaleItemFilter{SaleID: &id})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// GetItems lists line items. Query params: sale_id, product_id
// GET /api/v1/sale-items
func (h *SaleHandler) GetItems(c *fiber.Ctx) error {
	saleID, err := parseUUIDQuery(c, "sale_id")
	if err != nil {
		return badRequest(c, "Invalid sale_id")
	}
	productID, err := parseUUIDQuery(c, "product_id")
	if err != nil {
		return badRequest(c, "Invalid product_id")
	}

	items, err := h.service.ListItems(repository.SaleItemFilter{SaleID: saleID, ProductID: productID})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// GET /api/v1/sale-items/:id
func (h *SaleHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale item ID")
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// POST /api/v1/sale-items
func (h *SaleHandler) CreateItem(c *fiber.Ctx) error {
	var item model.SaleItem
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.AddItem(&item, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sale item added", "data": item})
}

// PUT /api/v1/sale-items/:id
func (h *SaleHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale item ID")
	}

	var item model.SaleItem
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateItem(id, &item, getActor(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Sale item updated", "data": updated})
}

// DELETE /api/v1/sale-items/:id
func (h *SaleHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid sale item ID")
	}

	if err := h.service.DeleteItem(id, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Sale item deleted"})
}
