package handler

import (
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// Index lists every registered record type with its current row count
// GET /api/v1/admin
func (h *AdminHandler) Index(c *fiber.Ctx) error {
	entries, err := h.service.Index()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"models": entries})
}
