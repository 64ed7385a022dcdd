package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the header of one till transaction. TotalAmount is stored as given
// by the caller and is not reconciled against Items.
type Sale struct {
	BaseModel
	SaleDate        time.Time       `gorm:"not null;index" json:"sale_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount" validate:"money"`
	Cashier         string          `gorm:"type:varchar(255);not null" json:"cashier" validate:"required,max=255"`
	CustomerName    *string         `gorm:"type:varchar(255)" json:"customer_name" validate:"omitempty,max=255"`
	CustomerAddress *string         `gorm:"type:text" json:"customer_address"`

	// Relasi
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty" validate:"-"`
}

func (s Sale) String() string {
	return fmt.Sprintf("Sale %s - %s", s.ID, s.SaleDate.Format(time.RFC3339))
}

// SaleItem is one product line of a sale. PricePerItem is captured when the
// sale is rung up and does not follow later product price changes.
type SaleItem struct {
	BaseModel
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id" validate:"uuid_required"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product      *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity     int             `gorm:"not null" json:"quantity" validate:"gt=0"`
	PricePerItem decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_item" validate:"gte=0,money"`
}

// TotalPrice returns Quantity × PricePerItem.
func (i SaleItem) TotalPrice() decimal.Decimal {
	return i.PricePerItem.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i SaleItem) String() string {
	name := i.ProductID.String()
	if i.Product != nil {
		name = i.Product.Name
	}
	return fmt.Sprintf("%d x %s", i.Quantity, name)
}
