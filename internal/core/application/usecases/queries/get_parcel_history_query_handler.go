package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler retrieves a parcel's status trail from the
// database.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for parcel history
// queries. Requires a GORM database connection for query execution.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the parcel's status changes in
// commit order.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetParcelHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			old_status,
			new_status,
			location,
			description,
			changed_by,
			source,
			created_at
		FROM parcel_status_history
		WHERE parcel_id = ?
		ORDER BY seq
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetParcelHistoryQueryResponse

		err = rows.Scan(
			&response.OldStatus,
			&response.NewStatus,
			&response.Location,
			&response.Description,
			&response.ChangedBy,
			&response.Source,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		history = append(history, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
