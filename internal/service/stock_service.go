package service

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/google/uuid"
)

// StockService keeps the stock adjustment log. Entries are freestanding: no
// running balance is kept and Product.StockQuantity is left alone.
type StockService interface {
	RecordAdjustment(req *model.StockAdjustment, actor Actor) error
	GetAdjustment(id uuid.UUID) (*model.StockAdjustment, error)
	ListAdjustments(filter repository.StockAdjustmentFilter) ([]model.StockAdjustment, error)
	DeleteAdjustment(id uuid.UUID, actor Actor) error
}

type stockService struct {
	base
	adjustmentRepo repository.StockAdjustmentRepository
	productRepo    repository.ProductRepository
}

func NewStockService(aRepo repository.StockAdjustmentRepository, pRepo repository.ProductRepository, clock Clock, notifier Notifier) StockService {
	return &stockService{
		base:           newBase(clock, notifier),
		adjustmentRepo: aRepo,
		productRepo:    pRepo,
	}
}

func (s *stockService) RecordAdjustment(req *model.StockAdjustment, actor Actor) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.Product = nil
	req.AdjustedAt = s.now()
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.adjustmentRepo.Create(req); err != nil {
		return err
	}
	req.Product = product

	s.publish(EntityStockAdjustment, ActionCreated, req.ID.String(), req, actor)
	return nil
}

func (s *stockService) GetAdjustment(id uuid.UUID) (*model.StockAdjustment, error) {
	return s.adjustmentRepo.FindByID(id)
}

func (s *stockService) ListAdjustments(filter repository.StockAdjustmentFilter) ([]model.StockAdjustment, error) {
	return s.adjustmentRepo.FindAll(filter)
}

func (s *stockService) DeleteAdjustment(id uuid.UUID, actor Actor) error {
	adj, err := s.adjustmentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.adjustmentRepo.Delete(id); err != nil {
		return err
	}

	s.publish(EntityStockAdjustment, ActionDeleted, id.String(), adj, actor)
	return nil
}
