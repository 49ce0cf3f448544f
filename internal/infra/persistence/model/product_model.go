package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name        string                 `gorm:"type:varchar(200);not null;index"`
	Slug        string                 `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string                 `gorm:"type:text;not null;default:''"`
	CategoryID  uuid.UUID              `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel         `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	VendorID    uuid.UUID              `gorm:"type:uuid;not null;index"`
	Vendor      *VendorModel           `gorm:"foreignKey:VendorID;constraint:OnDelete:RESTRICT"`
	BasePrice   float64                `gorm:"type:decimal(12,2);not null"`
	Status      string                 `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Variants    []*ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images      []*ProductImageModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time              `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
// Stock is only ever changed with an arithmetic UPDATE.
type ProductVariantModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	SKU        string            `gorm:"column:sku;type:varchar(100);not null"`
	Price      float64           `gorm:"type:decimal(12,2);not null;index"`
	Stock      int               `gorm:"not null;default:0"`
	Attributes datatypes.JSONMap `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ProductVariantModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ProductImageModel is the GORM-specific struct for the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"column:url;type:varchar(2048);not null"`
	Alt       *string   `gorm:"type:varchar(255)"`
	IsMain    bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ProductImageModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
