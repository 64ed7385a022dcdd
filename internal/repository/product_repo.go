package repository

import (
	"strings"

	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows FindAll. Search matches name or SKU, case-insensitively.
type ProductFilter struct {
	Search string
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return translateError(r.db.Omit(clause.Associations).Create(product).Error)
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Model(&model.Product{})
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := containsPattern(strings.ToLower(s))
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}
	err := q.Order("name ASC").Find(&products).Error
	return products, translateError(err)
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// Update writes every column except the creation stamps.
func (r *productRepo) Update(product *model.Product) error {
	return affected(r.db.Model(product).
		Select("*").
		Omit(clause.Associations, "ID", "CreatedAt", "CreatedBy").
		Updates(product))
}

// Delete menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi bersama cascade
func (r *productRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return affected(tx.Delete(&model.Product{}, "id = ?", id))
}

func (r *productRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Product{}).Count(&n).Error
	return n, err
}
