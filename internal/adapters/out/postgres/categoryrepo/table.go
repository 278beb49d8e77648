// Package categoryrepo resolves parcel categories and their shipping
// rates.
package categoryrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryDTO maps the parcel categories table.
type CategoryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"size:100"`
	BaseRate     decimal.Decimal `gorm:"type:decimal(10,2)"`
	PerPoundRate decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsActive     bool
}

// TableName specifies the database table name for parcel categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// GormCategoryTable implements CategoryTable using GORM.
type GormCategoryTable struct {
	db *gorm.DB
}

// NewGormCategoryTable creates a new GORM category table.
func NewGormCategoryTable(db *gorm.DB) *GormCategoryTable {
	return &GormCategoryTable{db: db}
}

// FindCategory retrieves a category by id, or nil when unknown.
func (t *GormCategoryTable) FindCategory(ctx context.Context, id kernel.UUID) (*ports.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := t.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Category{
		ID:   categoryID,
		Name: dto.Name,
		Rate: services.Rate{
			Base:     dto.BaseRate,
			PerPound: dto.PerPoundRate,
		},
		IsActive: dto.IsActive,
	}, nil
}
