package repository

import (
	"time"

	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseFilter struct {
	From *time.Time
	To   *time.Time
}

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(filter ExpenseFilter) ([]model.Expense, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return translateError(r.db.Create(expense).Error)
}

func (r *expenseRepo) FindAll(filter ExpenseFilter) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.Model(&model.Expense{})
	if filter.From != nil {
		q = q.Where("incurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("incurred_at <= ?", *filter.To)
	}
	err := q.Order("incurred_at DESC").Order("id DESC").Find(&expenses).Error
	return expenses, translateError(err)
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &expense, nil
}

// Update keeps incurred_at as recorded.
func (r *expenseRepo) Update(expense *model.Expense) error {
	return affected(r.db.Model(expense).
		Select("*").
		Omit("ID", "IncurredAt", "CreatedBy").
		Updates(expense))
}

func (r *expenseRepo) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&model.Expense{}, "id = ?", id))
}

func (r *expenseRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Expense{}).Count(&n).Error
	return n, err
}
