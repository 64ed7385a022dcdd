package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists the catalog, optionally filtered by ?search= over name and SKU
// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(repository.ProductFilter{Search: c.Query("search")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.CreateProduct(&product, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, &product, getActor(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// DeleteProduct also removes the product's sale items and stock adjustments
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(id, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
