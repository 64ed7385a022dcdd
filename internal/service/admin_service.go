package service

import (
	"go-pos-ledger/internal/repository"
)

// Registered record types
const (
	EntityProduct         = "product"
	EntitySale            = "sale"
	EntitySaleItem        = "sale_item"
	EntityStockAdjustment = "stock_adjustment"
	EntityExpense         = "expense"
)

// RegistryEntry describes one record type browsable through the admin surface.
type RegistryEntry struct {
	Entity      string `json:"entity"`
	VerboseName string `json:"verbose_name"`
	Path        string `json:"path"`
	Count       int64  `json:"count"`
}

// AdminService lists the registered record types with their row counts.
type AdminService interface {
	Index() ([]RegistryEntry, error)
}

type counter interface {
	Count() (int64, error)
}

type registration struct {
	entity, verboseName, path string
	repo                      counter
}

type adminService struct {
	registry []registration
}

func NewAdminService(
	pRepo repository.ProductRepository,
	sRepo repository.SaleRepository,
	iRepo repository.SaleItemRepository,
	aRepo repository.StockAdjustmentRepository,
	eRepo repository.ExpenseRepository,
) AdminService {
	return &adminService{registry: []registration{
		{EntitySale, "Sales", "/sales", sRepo},
		{EntityProduct, "Products", "/products", pRepo},
		{EntitySaleItem, "Sale items", "/sale-items", iRepo},
		{EntityStockAdjustment, "Stock adjustments", "/stock-adjustments", aRepo},
		{EntityExpense, "Expenses", "/expenses", eRepo},
	}}
}

func (s *adminService) Index() ([]RegistryEntry, error) {
	entries := make([]RegistryEntry, 0, len(s.registry))
	for _, r := range s.registry {
		n, err := r.repo.Count()
		if err != nil {
			return nil, err
		}
		entries = append(entries, RegistryEntry{
			Entity:      r.entity,
			VerboseName: r.verboseName,
			Path:        r.path,
			Count:       n,
		})
	}
	return entries, nil
}
