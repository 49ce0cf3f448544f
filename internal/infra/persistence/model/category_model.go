package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Deleting a row cascades to its whole subtree through the parent_id foreign key.
type CategoryModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(100);not null"`
	Slug        string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string          `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID       `gorm:"type:uuid;index"`
	Children    []*CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
