package handler

import (
	"go-pos-ledger/internal/middleware"
	"go-pos-ledger/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler mounted under /api/v1.
type Handlers struct {
	Auth    *AuthHandler
	Admin   *AdminHandler
	Role    *RoleHandler
	Product *ProductHandler
	Sale    *SaleHandler
	Stock   *StockHandler
	Expense *ExpenseHandler
	WS      *WSHandler
}

// Guards are the authentication middlewares the routes are mounted behind.
type Guards struct {
	RequireAuth       fiber.Handler // bearer token
	RequireQueryToken fiber.Handler // ?token= on the websocket upgrade
	LoginLimiter      fiber.Handler // optional
}

// SetupRoutes mounts the API and the change feed on app.
func SetupRoutes(app *fiber.App, h Handlers, g Guards) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	if g.LoginLimiter != nil {
		auth.Post("/login", g.LoginLimiter, h.Auth.Login)
	} else {
		auth.Post("/login", h.Auth.Login)
	}
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/validate-token", h.Auth.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", g.RequireAuth)
	priv := middleware.RequirePrivilege

	// Admin index
	protected.Get("/admin", priv(model.PrivAdminView), h.Admin.Index)
	protected.Get("/roles", priv(model.PrivAdminView), h.Role.GetRoles)
	protected.Get("/privileges", priv(model.PrivAdminView), h.Role.GetPrivileges)

	// Product Routes
	protected.Get("/products", priv(model.PrivProductView), h.Product.GetProducts)
	protected.Get("/products/:id", priv(model.PrivProductView), h.Product.GetProduct)
	protected.Post("/products", priv(model.PrivProductCreate), h.Product.CreateProduct)
	protected.Put("/products/:id", priv(model.PrivProductUpdate), h.Product.UpdateProduct)
	protected.Delete("/products/:id", priv(model.PrivProductDelete), h.Product.DeleteProduct)

	// Sale Routes
	protected.Get("/sales", priv(model.PrivSaleView), h.Sale.GetSales)
	protected.Get("/sales/:id", priv(model.PrivSaleView), h.Sale.GetSale)
	protected.Get("/sales/:id/receipt", priv(model.PrivSaleView), h.Sale.GetReceipt)
	protected.Get("/sales/:id/items", middleware.RequireAnyPrivilege(model.PrivSaleItemView, model.PrivSaleView), h.Sale.GetSaleItems)
	protected.Post("/sales", priv(model.PrivSaleCreate), h.Sale.CreateSale)
	protected.Put("/sales/:id", priv(model.PrivSaleUpdate), h.Sale.UpdateSale)
	protected.Delete("/sales/:id", priv(model.PrivSaleDelete), h.Sale.DeleteSale)

	// Sale Item Routes
	protected.Get("/sale-items", priv(model.PrivSaleItemView), h.Sale.GetItems)
	protected.Get("/sale-items/:id", priv(model.PrivSaleItemView), h.Sale.GetItem)
	protected.Post("/sale-items", priv(model.PrivSaleItemCreate), h.Sale.CreateItem)
	protected.Put("/sale-items/:id", priv(model.PrivSaleItemUpdate), h.Sale.UpdateItem)
	protected.Delete("/sale-items/:id", priv(model.PrivSaleItemDelete), h.Sale.DeleteItem)

	// Stock Adjustment Routes (append-only log, no update)
	protected.Get("/stock-adjustments", priv(model.PrivStockAdjustmentView), h.Stock.GetAdjustments)
	protected.Get("/stock-adjustments/:id", priv(model.PrivStockAdjustmentView), h.Stock.GetAdjustment)
	protected.Post("/stock-adjustments", priv(model.PrivStockAdjustmentCreate), h.Stock.CreateAdjustment)
	protected.Delete("/stock-adjustments/:id", priv(model.PrivStockAdjustmentDelete), h.Stock.DeleteAdjustment)

	// Expense Routes
	protected.Get("/expenses", priv(model.PrivExpenseView), h.Expense.GetExpenses)
	protected.Get("/expenses/:id", priv(model.PrivExpenseView), h.Expense.GetExpense)
	protected.Post("/expenses", priv(model.PrivExpenseCreate), h.Expense.CreateExpense)
	protected.Put("/expenses/:id", priv(model.PrivExpenseUpdate), h.Expense.UpdateExpense)
	protected.Delete("/expenses/:id", priv(model.PrivExpenseDelete), h.Expense.DeleteExpense)

	// WebSocket Route: the feed carries every record type, so it needs admin:view
	app.Get("/ws", h.WS.RequireUpgrade, g.RequireQueryToken, priv(model.PrivAdminView), h.WS.Stream())
}
