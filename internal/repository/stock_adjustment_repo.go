package repository

import (
	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockAdjustmentFilter struct {
	ProductID *uuid.UUID
}

// StockAdjustmentRepository is append-only: entries are created or removed, never edited.
type StockAdjustmentRepository interface {
	Create(adj *model.StockAdjustment) error
	FindAll(filter StockAdjustmentFilter) ([]model.StockAdjustment, error)
	FindByID(id uuid.UUID) (*model.StockAdjustment, error)
	Delete(id uuid.UUID) error
	DeleteByProductID(tx *gorm.DB, productID uuid.UUID) error
	Count() (int64, error)
}

type stockAdjustmentRepo struct {
	db *gorm.DB
}

func NewStockAdjustmentRepo(db *gorm.DB) StockAdjustmentRepository {
	return &stockAdjustmentRepo{db}
}

func (r *stockAdjustmentRepo) Create(adj *model.StockAdjustment) error {
	return translateError(r.db.Omit(clause.Associations).Create(adj).Error)
}

func (r *stockAdjustmentRepo) FindAll(filter StockAdjustmentFilter) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment
	q := r.db.Model(&model.StockAdjustment{}).Preload("Product")
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}
	err := q.Order("adjusted_at DESC").Order("id DESC").Find(&adjustments).Error
	return adjustments, translateError(err)
}

func (r *stockAdjustmentRepo) FindByID(id uuid.UUID) (*model.StockAdjustment, error) {
	var adj model.StockAdjustment
	if err := r.db.Preload("Product").First(&adj, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &adj, nil
}

func (r *stockAdjustmentRepo) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&model.StockAdjustment{}, "id = ?", id))
}

func (r *stockAdjustmentRepo) DeleteByProductID(tx *gorm.DB, productID uuid.UUID) error {
	return tx.Where("product_id = ?", productID).Delete(&model.StockAdjustment{}).Error
}

func (r *stockAdjustmentRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.StockAdjustment{}).Count(&n).Error
	return n, err
}
