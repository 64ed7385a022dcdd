package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item.
type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Description   *string         `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0,money"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"`
	SKU           string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required,max=50"`

	// Assigned explicitly by the catalog service.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (p Product) String() string {
	return p.Name
}
