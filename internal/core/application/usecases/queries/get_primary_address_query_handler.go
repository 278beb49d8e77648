package queries

import (
	"context"
	"database/sql"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPrimaryAddressQueryHandler retrieves the newest active primary address
// of a user, joined with its hub's display data.
type GetPrimaryAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetPrimaryAddressQueryHandler creates a handler for primary address
// lookups. Requires a GORM database connection for query execution.
func NewGetPrimaryAddressQueryHandler(db *gorm.DB) GetPrimaryAddressQueryHandler {
	return GetPrimaryAddressQueryHandler{db: db}
}

// Handle executes the lookup. A user without an active primary address
// fails with ObjectNotFoundError.
func (h GetPrimaryAddressQueryHandler) Handle(
	ctx context.Context,
	query GetPrimaryAddressQuery,
) (GetUserAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserAddressesQueryResponse{}, err
	}

	var response GetUserAddressesQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE a.user_id = ? AND a.status = 'ACTIVE' AND a.is_primary
		ORDER BY a.generated_at DESC
		LIMIT 1
	`, query.UserID().Bytes()).Row()

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserAddressesQueryResponse{},
				errs.NewObjectNotFoundError("userId", query.UserID())
		}
		return GetUserAddressesQueryResponse{}, err
	}

	addressID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserAddressesQueryResponse{}, err
	}
	response.ID = addressID

	return response, nil
}
