package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StoreName string    `gorm:"type:varchar(100);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *VendorModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// AllModels lists every catalog table in dependency order, for migrations and code generation.
func AllModels() []any {
	return []any{
		&VendorModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&ProductImageModel{},
	}
}
