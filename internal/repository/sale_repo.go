package repository

import (
	"strings"
	"time"

	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleFilter struct {
	Cashier string
	From    *time.Time
	To      *time.Time
}

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll(filter SaleFilter) ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	Update(sale *model.Sale) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	Count() (int64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return translateError(r.db.Omit(clause.Associations).Create(sale).Error)
}

func (r *saleRepo) FindAll(filter SaleFilter) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.Model(&model.Sale{})
	if c := strings.TrimSpace(filter.Cashier); c != "" {
		q = q.Where("cashier = ?", c)
	}
	if filter.From != nil {
		q = q.Where("sale_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("sale_date <= ?", *filter.To)
	}
	err := q.Order("sale_date DESC").Order("id DESC").Find(&sales).Error
	return sales, translateError(err)
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.First(&sale, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sale, nil
}

// Update never touches sale_date: it is fixed when the sale is rung up.
func (r *saleRepo) Update(sale *model.Sale) error {
	return affected(r.db.Model(sale).
		Select("*").
		Omit(clause.Associations, "ID", "SaleDate", "CreatedBy").
		Updates(sale))
}

func (r *saleRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return affected(tx.Delete(&model.Sale{}, "id = ?", id))
}

func (r *saleRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Sale{}).Count(&n).Error
	return n, err
}
