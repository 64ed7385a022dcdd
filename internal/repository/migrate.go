package repository

import (
	"go-pos-ledger/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables for every registered record type.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
		&model.StockAdjustment{},
		&model.Expense{},
		&model.Privilege{},
		&model.Role{},
		&model.User{},
	)
}
