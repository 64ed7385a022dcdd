package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

// GET /api/v1/expenses?from=&to=
func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from", false)
	if err != nil {
		return badRequest(c, "Invalid 'from' date")
	}
	to, err := parseTimeQuery(c, "to", true)
	if err != nil {
		return badRequest(c, "Invalid 'to' date")
	}

	expenses, err := h.service.ListExpenses(repository.ExpenseFilter{From: from, To: to})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(expenses)
}

// GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid expense ID")
	}

	expense, err := h.service.GetExpense(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(expense)
}

// POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.CreateExpense(&expense, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Expense recorded", "data": expense})
}

// PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid expense ID")
	}

	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateExpense(id, &expense, getActor(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Expense updated", "data": updated})
}

// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid expense ID")
	}

	if err := h.service.DeleteExpense(id, getActor(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
