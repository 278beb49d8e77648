package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserAddressesQueryHandler retrieves a user's forwarding addresses from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetUserAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserAddressesQueryHandler creates a handler for address listing
// queries. Requires a GORM database connection for query execution.
func NewGetUserAddressesQueryHandler(db *gorm.DB) GetUserAddressesQueryHandler {
	return GetUserAddressesQueryHandler{db: db}
}

// Handle executes the query and returns the user's addresses, newest
// first, each joined with its hub's display data.
func (h GetUserAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetUserAddressesQuery,
) ([]GetUserAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]GetUserAddressesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.address_code,
			a.hub,
			COALESCE(h.hub_name, ''),
			a.status,
			a.is_primary,
			a.us_street,
			a.us_city,
			a.us_state,
			a.us_zip,
			a.generated_at,
			a.deactivated_at
		FROM custom_addresses a
		LEFT JOIN hub_addresses h ON h.hub = a.hub
		WHERE a.user_id = ?
		ORDER BY a.generated_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUserAddressesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.AddressCode,
			&response.Hub,
			&response.HubName,
			&response.Status,
			&response.IsPrimary,
			&response.Street,
			&response.City,
			&response.State,
			&response.Zip,
			&response.GeneratedAt,
			&response.DeactivatedAt,
		)
		if err != nil {
			return nil, err
		}

		addressID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = addressID
		addresses = append(addresses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
