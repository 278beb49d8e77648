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

// CheckPickupReadinessQueryHandler evaluates whether a parcel can be
// collected. The parcel is ready when its status is READY or DELIVERED and
// the most recent invoice billing it is PAID.
type CheckPickupReadinessQueryHandler struct {
	db *gorm.DB
}

// NewCheckPickupReadinessQueryHandler creates a handler for pickup
// readiness checks. Requires a GORM database connection for query
// execution.
func NewCheckPickupReadinessQueryHandler(db *gorm.DB) CheckPickupReadinessQueryHandler {
	return CheckPickupReadinessQueryHandler{db: db}
}

// Handle executes the readiness check. An unknown tracking number fails
// with ObjectNotFoundError; an unready parcel returns Ready=false with the
// blockers listed, never an error.
func (h CheckPickupReadinessQueryHandler) Handle(
	ctx context.Context,
	query CheckPickupReadinessQuery,
) (CheckPickupReadinessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckPickupReadinessQueryResponse{}, err
	}

	var (
		id     uuid.UUID
		status string
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, status
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Row()
	if err := row.Scan(&id, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CheckPickupReadinessQueryResponse{},
				errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
		}
		return CheckPickupReadinessQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CheckPickupReadinessQueryResponse{}, err
	}

	response := CheckPickupReadinessQueryResponse{
		ParcelID:       parcelID,
		TrackingNumber: query.TrackingNumber(),
		Status:         status,
		Blockers:       make([]string, 0),
	}

	if status != "READY" && status != "DELIVERED" {
		response.Blockers = append(response.Blockers, "status not ready")
	}

	var invoiceStatus string
	row = h.db.WithContext(ctx).Raw(`
		SELECT i.status
		FROM invoices i
		JOIN invoice_items ii ON ii.invoice_id = i.id
		WHERE ii.parcel_id = ?
		ORDER BY i.created_at DESC
		LIMIT 1
	`, parcelID.Bytes()).Row()
	switch err := row.Scan(&invoiceStatus); {
	case errors.Is(err, sql.ErrNoRows):
		response.Blockers = append(response.Blockers, "no invoice found")
	case err != nil:
		return CheckPickupReadinessQueryResponse{}, err
	case invoiceStatus != "PAID":
		response.Blockers = append(response.Blockers, "invoice not paid")
	}

	response.Ready = len(response.Blockers) == 0
	return response, nil
}
