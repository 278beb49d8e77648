// Package userdir resolves platform users from the shared users table.
// The forwarding core only reads existence and display data; account
// management lives elsewhere.
package userdir

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO maps the shared users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"size:255;uniqueIndex"`
	FirstName string    `gorm:"size:100"`
	LastName  string    `gorm:"size:100"`
	Role      string    `gorm:"size:16"`
	IsActive  bool
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// FindUser retrieves a user by id, or nil when unknown.
func (d *GormUserDirectory) FindUser(ctx context.Context, id kernel.UUID) (*ports.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindUserByEmail retrieves a user by email, or nil when unknown.
func (d *GormUserDirectory) FindUserByEmail(ctx context.Context, email string) (*ports.User, error) {
	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto UserDTO) (*ports.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.User{
		ID:        id,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      ports.Role(dto.Role),
		IsActive:  dto.IsActive,
	}, nil
}
