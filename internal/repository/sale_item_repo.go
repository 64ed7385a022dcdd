package repository

import (
	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleItemFilter struct {
	SaleID    *uuid.UUID
	ProductID *uuid.UUID
}

type SaleItemRepository interface {
	Create(item *model.SaleItem) error
	FindAll(filter SaleItemFilter) ([]model.SaleItem, error)
	FindByID(id uuid.UUID) (*model.SaleItem, error)
	Update(item *model.SaleItem) error
	Delete(id uuid.UUID) error
	DeleteBySaleID(tx *gorm.DB, saleID uuid.UUID) error
	DeleteByProductID(tx *gorm.DB, productID uuid.UUID) error
	Count() (int64, error)
}

type saleItemRepo struct {
	db *gorm.DB
}

func NewSaleItemRepo(db *gorm.DB) SaleItemRepository {
	return &saleItemRepo{db}
}

func (r *saleItemRepo) Create(item *model.SaleItem) error {
	return translateError(r.db.Omit(clause.Associations).Create(item).Error)
}

// FindAll returns items in insertion order with their products preloaded.
// A missing product leaves Product nil.
func (r *saleItemRepo) FindAll(filter SaleItemFilter) ([]model.SaleItem, error) {
	var items []model.SaleItem
	q := r.db.Model(&model.SaleItem{}).Preload("Product")
	if filter.SaleID != nil {
		q = q.Where("sale_id = ?", *filter.SaleID)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}
	err := q.Order("id ASC").Find(&items).Error
	return items, translateError(err)
}

func (r *saleItemRepo) FindByID(id uuid.UUID) (*model.SaleItem, error) {
	var item model.SaleItem
	if err := r.db.Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *saleItemRepo) Update(item *model.SaleItem) error {
	return affected(r.db.Model(item).
		Select("*").
		Omit(clause.Associations, "ID", "CreatedBy").
		Updates(item))
}

func (r *saleItemRepo) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&model.SaleItem{}, "id = ?", id))
}

func (r *saleItemRepo) DeleteBySaleID(tx *gorm.DB, saleID uuid.UUID) error {
	return tx.Where("sale_id = ?", saleID).Delete(&model.SaleItem{}).Error
}

func (r *saleItemRepo) DeleteByProductID(tx *gorm.DB, productID uuid.UUID) error {
	return tx.Where("product_id = ?", productID).Delete(&model.SaleItem{}).Error
}

func (r *saleItemRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.SaleItem{}).Count(&n).Error
	return n, err
}
