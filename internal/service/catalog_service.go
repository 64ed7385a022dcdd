package service

import (
	"errors"
	"fmt"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages products. It guards SKU uniqueness and non-negative
// stock and price; it never adjusts stock on its own.
type CatalogService interface {
	CreateProduct(req *model.Product, actor Actor) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor Actor) error
}

type catalogService struct {
	base
	productRepo    repository.ProductRepository
	saleItemRepo   repository.SaleItemRepository
	adjustmentRepo repository.StockAdjustmentRepository
	db             *gorm.DB
}

func NewCatalogService(
	pRepo repository.ProductRepository,
	iRepo repository.SaleItemRepository,
	aRepo repository.StockAdjustmentRepository,
	db *gorm.DB,
	clock Clock,
	notifier Notifier,
) CatalogService {
	return &catalogService{
		base:           newBase(clock, notifier),
		productRepo:    pRepo,
		saleItemRepo:   iRepo,
		adjustmentRepo: aRepo,
		db:             db,
	}
}

// ensureSKUFree fails when sku belongs to a product other than self.
func (s *catalogService) ensureSKUFree(sku string, self uuid.UUID) error {
	existing, err := s.productRepo.FindBySKU(sku)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return fmt.Errorf("%w: SKU '%s' already exists", apperrors.ErrUniquenessViolation, sku)
	}
	return nil
}

func (s *catalogService) CreateProduct(req *model.Product, actor Actor) error {
	// 1. Validasi Struct Dasar
	if err := validator.Check(req); err != nil {
		return err
	}

	// 2. Cek Duplikasi SKU
	if err := s.ensureSKUFree(req.SKU, uuid.Nil); err != nil {
		return err
	}

	// 3. Stamp identity, audit and timestamps
	now := s.now()
	req.ID = uuid.Nil
	req.CreatedAt = now
	req.UpdatedAt = now
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.publish(EntityProduct, ActionCreated, req.ID.String(), req, actor)
	return nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *catalogService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.StockQuantity = req.StockQuantity
	existing.SKU = req.SKU

	if err := validator.Check(existing); err != nil {
		return nil, err
	}
	if err := s.ensureSKUFree(existing.SKU, existing.ID); err != nil {
		return nil, err
	}

	existing.UpdatedAt = s.now()
	existing.UpdatedBy = actor.ID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.publish(EntityProduct, ActionUpdated, existing.ID.String(), existing, actor)
	return existing, nil
}

// DeleteProduct removes the product together with every sale item and stock
// adjustment that references it, in one transaction.
func (s *catalogService) DeleteProduct(id uuid.UUID, actor Actor) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.saleItemRepo.DeleteByProductID(tx, id); err != nil {
			return err
		}
		if err := s.adjustmentRepo.DeleteByProductID(tx, id); err != nil {
			return err
		}
		return s.productRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.publish(EntityProduct, ActionDeleted, id.String(), product, actor)
	return nil
}
