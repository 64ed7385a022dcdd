package service

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService manages sale headers and their line items and assembles receipts.
//
// It does not decrement stock, look up prices or compute totals: whoever rings
// up the sale supplies PricePerItem and TotalAmount.
type SaleService interface {
	CreateSale(req *model.Sale, actor Actor) error
	GetSale(id uuid.UUID) (*model.Sale, error)
	ListSales(filter repository.SaleFilter) ([]model.Sale, error)
	UpdateSale(id uuid.UUID, req *model.Sale, actor Actor) (*model.Sale, error)
	DeleteSale(id uuid.UUID, actor Actor) error

	AddItem(req *model.SaleItem, actor Actor) error
	GetItem(id uuid.UUID) (*model.SaleItem, error)
	ListItems(filter repository.SaleItemFilter) ([]model.SaleItem, error)
	UpdateItem(id uuid.UUID, req *model.SaleItem, actor Actor) (*model.SaleItem, error)
	DeleteItem(id uuid.UUID, actor Actor) error

	GetReceipt(saleID uuid.UUID) (*model.Receipt, error)
}

type saleService struct {
	base
	saleRepo    repository.SaleRepository
	itemRepo    repository.SaleItemRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewSaleService(
	sRepo repository.SaleRepository,
	iRepo repository.SaleItemRepository,
	pRepo repository.ProductRepository,
	db *gorm.DB,
	clock Clock,
	notifier Notifier,
) SaleService {
	return &saleService{
		base:        newBase(clock, notifier),
		saleRepo:    sRepo,
		itemRepo:    iRepo,
		productRepo: pRepo,
		db:          db,
	}
}

// CreateSale stores the header only; line items are attached with AddItem.
func (s *saleService) CreateSale(req *model.Sale, actor Actor) error {
	if err := validator.Check(req); err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.SaleDate = s.now()
	req.Items = nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.saleRepo.Create(req); err != nil {
		return err
	}

	s.publish(EntitySale, ActionCreated, req.ID.String(), req, actor)
	return nil
}

func (s *saleService) GetSale(id uuid.UUID) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}

func (s *saleService) ListSales(filter repository.SaleFilter) ([]model.Sale, error) {
	return s.saleRepo.FindAll(filter)
}

// UpdateSale edits the header fields. SaleDate stays as recorded.
func (s *saleService) UpdateSale(id uuid.UUID, req *model.Sale, actor Actor) (*model.Sale, error) {
	existing, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.TotalAmount = req.TotalAmount
	existing.Cashier = req.Cashier
	existing.CustomerName = req.CustomerName
	existing.CustomerAddress = req.CustomerAddress

	if err := validator.Check(existing); err != nil {
		return nil, err
	}
	existing.UpdatedBy = actor.ID

	if err := s.saleRepo.Update(existing); err != nil {
		return nil, err
	}

	s.publish(EntitySale, ActionUpdated, existing.ID.String(), existing, actor)
	return existing, nil
}

// DeleteSale removes the sale and all of its line items in one transaction.
func (s *saleService) DeleteSale(id uuid.UUID, actor Actor) error {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.itemRepo.DeleteBySaleID(tx, id); err != nil {
			return err
		}
		return s.saleRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.publish(EntitySale, ActionDeleted, id.String(), sale, actor)
	return nil
}

// AddItem attaches a line to an existing sale. Both the sale and the product
// must exist; the caller decides PricePerItem.
func (s *saleService) AddItem(req *model.SaleItem, actor Actor) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	if _, err := s.saleRepo.FindByID(req.SaleID); err != nil {
		return err
	}
	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.Product = nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.itemRepo.Create(req); err != nil {
		return err
	}
	req.Product = product

	s.publish(EntitySaleItem, ActionCreated, req.ID.String(), req, actor)
	return nil
}

func (s *saleService) GetItem(id uuid.UUID) (*model.SaleItem, error) {
	return s.itemRepo.FindByID(id)
}

func (s *saleService) ListItems(filter repository.SaleItemFilter) ([]model.SaleItem, error) {
	return s.itemRepo.FindAll(filter)
}

// UpdateItem changes product, quantity or price of a line. A line never moves
// to another sale.
func (s *saleService) UpdateItem(id uuid.UUID, req *model.SaleItem, actor Actor) (*model.SaleItem, error) {
	existing, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.ProductID != uuid.Nil && req.ProductID != existing.ProductID {
		product, err := s.productRepo.FindByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		existing.ProductID = product.ID
		existing.Product = product
	}
	existing.Quantity = req.Quantity
	existing.PricePerItem = req.PricePerItem

	if err := validator.Check(existing); err != nil {
		return nil, err
	}
	existing.UpdatedBy = actor.ID

	if err := s.itemRepo.Update(existing); err != nil {
		return nil, err
	}

	s.publish(EntitySaleItem, ActionUpdated, existing.ID.String(), existing, actor)
	return existing, nil
}

func (s *saleService) DeleteItem(id uuid.UUID, actor Actor) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}

	s.publish(EntitySaleItem, ActionDeleted, id.String(), item, actor)
	return nil
}

// GetReceipt reads the sale and its lines, resolving each line's product name
// at call time. Read only.
func (s *saleService) GetReceipt(saleID uuid.UUID) (*model.Receipt, error) {
	sale, err := s.saleRepo.FindByID(saleID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindAll(repository.SaleItemFilter{SaleID: &sale.ID})
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale.Receipt()
}
