package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	BaseModel
	Description string          `gorm:"type:varchar(255);not null" json:"description" validate:"notblank,max=255"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount" validate:"money"`
	IncurredAt  time.Time       `gorm:"not null;index" json:"incurred_at"`
}

func (e Expense) String() string {
	return e.Description
}
