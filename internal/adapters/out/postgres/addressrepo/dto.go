// Package addressrepo provides data transfer objects and mapping functions
// for custom address persistence. This package implements the repository
// pattern for the address domain aggregate, handling the conversion between
// domain entities and database representations.
package addressrepo

import (
	"time"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting custom
// address aggregates. The address code carries a unique index; duplicate
// codes are rejected by the database regardless of application-level
// checks.
type AddressDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index:idx_addresses_user_hub"`
	AddressCode   string    `gorm:"size:20;uniqueIndex"`
	Hub           string    `gorm:"size:3;index:idx_addresses_user_hub"`
	SequenceValue int64     `gorm:"not null"`
	Status        string    `gorm:"size:16;index"`
	IsPrimary     bool
	UsStreet      string `gorm:"size:255"`
	UsCity        string `gorm:"size:100"`
	UsState       string `gorm:"size:2"`
	UsZip         string `gorm:"size:10"`
	GeneratedAt   time.Time
	DeactivatedAt *time.Time
}

// TableName specifies the database table name for custom addresses.
func (AddressDTO) TableName() string {
	return "custom_addresses"
}

// fromDomain converts a custom address aggregate to its database
// representation.
func fromDomain(aggregate *address.CustomAddress) AddressDTO {
	us := aggregate.USAddress()
	return AddressDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		AddressCode:   aggregate.Code().String(),
		Hub:           aggregate.Hub().String(),
		SequenceValue: aggregate.SequenceValue(),
		Status:        aggregate.Status().String(),
		IsPrimary:     aggregate.IsPrimary(),
		UsStreet:      us.Street,
		UsCity:        us.City,
		UsState:       us.State,
		UsZip:         us.Zip,
		GeneratedAt:   aggregate.GeneratedAt(),
		DeactivatedAt: aggregate.DeactivatedAt(),
	}
}

// toDomain converts a database DTO to a custom address aggregate using
// RestoreCustomAddress.
func toDomain(dto AddressDTO) (*address.CustomAddress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.ParseAddressCode(dto.AddressCode)
	if err != nil {
		return nil, err
	}

	hub, err := kernel.NewHubCode(dto.Hub)
	if err != nil {
		return nil, err
	}

	return address.RestoreCustomAddress(
		id,
		userID,
		code,
		hub,
		dto.SequenceValue,
		address.Status(dto.Status),
		dto.IsPrimary,
		address.USAddress{
			Street: dto.UsStreet,
			City:   dto.UsCity,
			State:  dto.UsState,
			Zip:    dto.UsZip,
		},
		dto.GeneratedAt,
		dto.DeactivatedAt,
	)
}
