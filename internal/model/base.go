package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles the ID and the staff audit trail shared by every record.
// IDs are UUIDv7, so ordering by id follows insertion order.
type BaseModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Audit User Tracking
	CreatedBy string `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
}

// BeforeCreate assigns an ID unless the caller already set one.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID, err = uuid.NewV7()
	}
	return
}
