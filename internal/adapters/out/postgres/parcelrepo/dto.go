// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Besides the parcel row itself, the package owns
// the append-only status history table written in the same transaction as
// every parcel mutation.
package parcelrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking number carries a unique index.
type ParcelDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber        string     `gorm:"size:20;uniqueIndex"`
	UserID                uuid.UUID  `gorm:"type:uuid;index"`
	CustomAddressID       uuid.UUID  `gorm:"type:uuid;index"`
	CategoryID            *uuid.UUID `gorm:"type:uuid"`
	Carrier               string     `gorm:"size:100"`
	CarrierTrackingNumber string     `gorm:"size:100"`
	Description           string     `gorm:"size:500"`
	Weight                *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Length                *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Width                 *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Height                *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DeclaredValue         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Warehouse             string           `gorm:"size:10"`
	CurrentLocation       string           `gorm:"size:255"`
	Notes                 string           `gorm:"size:1000"`
	InternalNotes         string           `gorm:"size:1000"`
	Status                string           `gorm:"size:20;index"`
	ReceivedAt            *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for parcels.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// HistoryDTO represents one status history record. Rows are append-only;
// Seq preserves commit order within and across transactions.
type HistoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	OldStatus   *string   `gorm:"size:20"`
	NewStatus   string    `gorm:"size:20"`
	Location    string    `gorm:"size:255"`
	Description string    `gorm:"size:500"`
	ChangedBy   string    `gorm:"size:100"`
	Source      string    `gorm:"size:10"`
	Metadata    datatypes.JSONMap
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for parcel status history.
func (HistoryDTO) TableName() string {
	return "parcel_status_history"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	attrs := aggregate.Attributes()

	var categoryID *uuid.UUID
	if attrs.CategoryID != nil {
		raw := attrs.CategoryID.Bytes()
		categoryID = &raw
	}

	return ParcelDTO{
		ID:                    aggregate.ID().Bytes(),
		TrackingNumber:        aggregate.TrackingNumber(),
		UserID:                aggregate.UserID().Bytes(),
		CustomAddressID:       aggregate.CustomAddressID().Bytes(),
		CategoryID:            categoryID,
		Carrier:               attrs.Carrier,
		CarrierTrackingNumber: attrs.CarrierTrackingNumber,
		Description:           attrs.Description,
		Weight:                attrs.Weight,
		Length:                attrs.Length,
		Width:                 attrs.Width,
		Height:                attrs.Height,
		DeclaredValue:         attrs.DeclaredValue,
		Warehouse:             attrs.Warehouse,
		CurrentLocation:       attrs.CurrentLocation,
		Notes:                 attrs.Notes,
		InternalNotes:         attrs.InternalNotes,
		Status:                aggregate.Status().String(),
		ReceivedAt:            aggregate.ReceivedAt(),
		ShippedAt:             aggregate.ShippedAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a parcel aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.CustomAddressID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryID = &cID
	}

	attrs := parcel.Attributes{
		CategoryID:            categoryID,
		Carrier:               dto.Carrier,
		CarrierTrackingNumber: dto.CarrierTrackingNumber,
		Description:           dto.Description,
		Weight:                dto.Weight,
		Length:                dto.Length,
		Width:                 dto.Width,
		Height:                dto.Height,
		DeclaredValue:         dto.DeclaredValue,
		Warehouse:             dto.Warehouse,
		CurrentLocation:       dto.CurrentLocation,
		Notes:                 dto.Notes,
		InternalNotes:         dto.InternalNotes,
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingNumber,
		userID,
		addressID,
		attrs,
		parcel.Status(dto.Status),
		dto.ReceivedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
	)
}

// historyFromDomain converts a pending status change to its database
// representation.
func historyFromDomain(change parcel.StatusChange) HistoryDTO {
	var oldStatus *string
	if change.OldStatus != nil {
		raw := change.OldStatus.String()
		oldStatus = &raw
	}

	var metadata datatypes.JSONMap
	if change.Metadata != nil {
		metadata = datatypes.JSONMap(change.Metadata)
	}

	return HistoryDTO{
		ID:          change.ID.Bytes(),
		ParcelID:    change.ParcelID.Bytes(),
		OldStatus:   oldStatus,
		NewStatus:   change.NewStatus.String(),
		Location:    change.Location,
		Description: change.Description,
		ChangedBy:   change.ChangedBy,
		Source:      string(change.Source),
		Metadata:    metadata,
	}
}

// historyToDomain converts a history DTO back to a status change record.
func historyToDomain(dto HistoryDTO) (parcel.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.StatusChange{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return parcel.StatusChange{}, err
	}

	var oldStatus *parcel.Status
	if dto.OldStatus != nil {
		status := parcel.Status(*dto.OldStatus)
		oldStatus = &status
	}

	var metadata map[string]any
	if dto.Metadata != nil {
		metadata = map[string]any(dto.Metadata)
	}

	return parcel.StatusChange{
		ID:          id,
		ParcelID:    parcelID,
		OldStatus:   oldStatus,
		NewStatus:   parcel.Status(dto.NewStatus),
		Location:    dto.Location,
		Description: dto.Description,
		ChangedBy:   dto.ChangedBy,
		Source:      parcel.Source(dto.Source),
		Metadata:    metadata,
	}, nil
}
