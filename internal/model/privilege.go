package model

// Privilege represents a permission that can be assigned to staff users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Product"
}

// Privilege codes checked by the admin routes.
const (
	PrivAdminView = "admin:view"

	PrivProductView   = "product:view"
	PrivProductCreate = "product:create"
	PrivProductUpdate = "product:update"
	PrivProductDelete = "product:delete"

	PrivSaleView   = "sale:view"
	PrivSaleCreate = "sale:create"
	PrivSaleUpdate = "sale:update"
	PrivSaleDelete = "sale:delete"

	PrivSaleItemView   = "sale_item:view"
	PrivSaleItemCreate = "sale_item:create"
	PrivSaleItemUpdate = "sale_item:update"
	PrivSaleItemDelete = "sale_item:delete"

	PrivStockAdjustmentView   = "stock_adjustment:view"
	PrivStockAdjustmentCreate = "stock_adjustment:create"
	PrivStockAdjustmentDelete = "stock_adjustment:delete"

	PrivExpenseView   = "expense:view"
	PrivExpenseCreate = "expense:create"
	PrivExpenseUpdate = "expense:update"
	PrivExpenseDelete = "expense:delete"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	{Code: PrivAdminView, Name: "View Admin Index"},
	// Product catalog
	{Code: PrivProductView, Name: "View Product"},
	{Code: PrivProductCreate, Name: "Create Product"},
	{Code: PrivProductUpdate, Name: "Update Product"},
	{Code: PrivProductDelete, Name: "Delete Product"},
	// Sales
	{Code: PrivSaleView, Name: "View Sale"},
	{Code: PrivSaleCreate, Name: "Create Sale"},
	{Code: PrivSaleUpdate, Name: "Update Sale"},
	{Code: PrivSaleDelete, Name: "Delete Sale"},
	// Sale line items
	{Code: PrivSaleItemView, Name: "View Sale Item"},
	{Code: PrivSaleItemCreate, Name: "Create Sale Item"},
	{Code: PrivSaleItemUpdate, Name: "Update Sale Item"},
	{Code: PrivSaleItemDelete, Name: "Delete Sale Item"},
	// Stock adjustments
	{Code: PrivStockAdjustmentView, Name: "View Stock Adjustment"},
	{Code: PrivStockAdjustmentCreate, Name: "Create Stock Adjustment"},
	{Code: PrivStockAdjustmentDelete, Name: "Delete Stock Adjustment"},
	// Expenses
	{Code: PrivExpenseView, Name: "View Expense"},
	{Code: PrivExpenseCreate, Name: "Create Expense"},
	{Code: PrivExpenseUpdate, Name: "Update Expense"},
	{Code: PrivExpenseDelete, Name: "Delete Expense"},
}

// CashierPrivileges is what the CASHIER role gets: ring up sales, read the catalog.
var CashierPrivileges = []string{
	PrivProductView,
	PrivSaleView, PrivSaleCreate, PrivSaleUpdate, PrivSaleDelete,
	PrivSaleItemView, PrivSaleItemCreate, PrivSaleItemUpdate, PrivSaleItemDelete,
}
