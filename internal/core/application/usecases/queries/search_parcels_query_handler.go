package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchParcelsQueryHandler finds parcels matching the query's filters.
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for parcel searches.
// Requires a GORM database connection for query execution.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the search and returns the matching parcels, newest
// intake first. No match is an empty slice, never an error.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) ([]SearchParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_number,
			user_id,
			status,
			carrier,
			description,
			warehouse,
			current_location,
			received_at
		FROM parcels
		WHERE 1 = 1`
	args := make([]interface{}, 0, 5)

	if query.ParcelID() != nil {
		sql += " AND id = ?"
		args = append(args, query.ParcelID().Bytes())
	}
	if query.UserID() != nil {
		sql += " AND user_id = ?"
		args = append(args, query.UserID().Bytes())
	}
	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Term() != "" {
		sql += " AND (tracking_number ILIKE ? OR carrier_tracking_number ILIKE ? OR description ILIKE ?)"
		pattern := "%" + query.Term() + "%"
		args = append(args, pattern, pattern, pattern)
	}

	sql += " ORDER BY received_at DESC"

	parcels := make([]SearchParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response SearchParcelsQueryResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&response.TrackingNumber,
			&userID,
			&response.Status,
			&response.Carrier,
			&response.Description,
			&response.Warehouse,
			&response.CurrentLocation,
			&response.ReceivedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = parcelID
		response.UserID = ownerID

		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
