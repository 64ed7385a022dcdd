package model

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustment logs an out-of-band inventory correction (restock, damage,
// recount). Quantity is signed: positive restocks, negative deducts. Recording
// one never changes Product.StockQuantity.
type StockAdjustment struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Reason     string    `gorm:"type:text;not null" json:"reason" validate:"notblank"`
	AdjustedAt time.Time `gorm:"not null;index" json:"adjusted_at"`
}

func (a StockAdjustment) String() string {
	name := a.ProductID.String()
	if a.Product != nil {
		name = a.Product.Name
	}
	return "Adjustment for " + name
}
