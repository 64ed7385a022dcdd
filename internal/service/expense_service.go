package service

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/google/uuid"
)

type ExpenseService interface {
	CreateExpense(req *model.Expense, actor Actor) error
	GetExpense(id uuid.UUID) (*model.Expense, error)
	ListExpenses(filter repository.ExpenseFilter) ([]model.Expense, error)
	UpdateExpense(id uuid.UUID, req *model.Expense, actor Actor) (*model.Expense, error)
	DeleteExpense(id uuid.UUID, actor Actor) error
}

type expenseService struct {
	base
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(eRepo repository.ExpenseRepository, clock Clock, notifier Notifier) ExpenseService {
	return &expenseService{
		base:        newBase(clock, notifier),
		expenseRepo: eRepo,
	}
}

func (s *expenseService) CreateExpense(req *model.Expense, actor Actor) error {
	if err := validator.Check(req); err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.IncurredAt = s.now()
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.expenseRepo.Create(req); err != nil {
		return err
	}

	s.publish(EntityExpense, ActionCreated, req.ID.String(), req, actor)
	return nil
}

func (s *expenseService) GetExpense(id uuid.UUID) (*model.Expense, error) {
	return s.expenseRepo.FindByID(id)
}

func (s *expenseService) ListExpenses(filter repository.ExpenseFilter) ([]model.Expense, error) {
	return s.expenseRepo.FindAll(filter)
}

// UpdateExpense edits description and amount; IncurredAt stays as recorded.
func (s *expenseService) UpdateExpense(id uuid.UUID, req *model.Expense, actor Actor) (*model.Expense, error) {
	existing, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Description = req.Description
	existing.Amount = req.Amount

	if err := validator.Check(existing); err != nil {
		return nil, err
	}
	existing.UpdatedBy = actor.ID

	if err := s.expenseRepo.Update(existing); err != nil {
		return nil, err
	}

	s.publish(EntityExpense, ActionUpdated, existing.ID.String(), existing, actor)
	return existing, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID, actor Actor) error {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}

	s.publish(EntityExpense, ActionDeleted, id.String(), expense, actor)
	return nil
}
