// Package hubrepo persists hub reference data: the forwarding hubs and the
// physical US intake addresses stamped onto allocated client addresses.
package hubrepo

import (
	"time"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HubDTO represents the database structure for hub reference data, keyed by
// the unique 3-letter hub code.
type HubDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Hub       string    `gorm:"size:3;uniqueIndex"`
	HubName   string    `gorm:"size:100"`
	UsStreet  string    `gorm:"size:255"`
	UsCity    string    `gorm:"size:100"`
	UsState   string    `gorm:"size:2"`
	UsZip     string    `gorm:"size:10"`
	IsActive  bool
	UpdatedAt time.Time
}

// TableName specifies the database table name for hubs.
func (HubDTO) TableName() string {
	return "hub_addresses"
}

// fromDomain converts a hub entity to its database representation.
func fromDomain(hub *address.HubAddress) HubDTO {
	us := hub.USAddress()
	return HubDTO{
		ID:        hub.ID().Bytes(),
		Hub:       hub.Hub().String(),
		HubName:   hub.HubName(),
		UsStreet:  us.Street,
		UsCity:    us.City,
		UsState:   us.State,
		UsZip:     us.Zip,
		IsActive:  hub.IsActive(),
		UpdatedAt: hub.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a hub entity using RestoreHubAddress.
func toDomain(dto HubDTO) (*address.HubAddress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hub, err := kernel.NewHubCode(dto.Hub)
	if err != nil {
		return nil, err
	}

	return address.RestoreHubAddress(
		id,
		hub,
		dto.HubName,
		address.USAddress{
			Street: dto.UsStreet,
			City:   dto.UsCity,
			State:  dto.UsState,
			Zip:    dto.UsZip,
		},
		dto.IsActive,
		dto.UpdatedAt,
	)
}
