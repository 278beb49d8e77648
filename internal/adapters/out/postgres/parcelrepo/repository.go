package parcelrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint
// violations.
const uniqueViolation = "23505"

// GormParcelRepository implements ParcelRepository using GORM.
//
// Add and Update drain the aggregate's pending history records and write
// them alongside the parcel row, so a parcel mutation and its audit trail
// always land in the same transaction.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and its creation history record. A duplicate
// tracking number surfaces as a ConflictError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("trackingNumber", aggregate.TrackingNumber(), err)
		}
		return err
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel and any pending history records.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a parcel by its tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the parcels with the given ids that belong to the
// given user. Parcels of other users are silently absent from the result.
func (r *GormParcelRepository) GetAllByIDs(ctx context.Context, userID kernel.UUID, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("parcelIds")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND user_id = ?", rawIDs, userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// GetHistory retrieves a parcel's status history in commit order.
func (r *GormParcelRepository) GetHistory(ctx context.Context, parcelID kernel.UUID) ([]parcel.StatusChange, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	history := make([]parcel.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	return history, nil
}

// appendHistory writes the aggregate's pending history records, if any.
func (r *GormParcelRepository) appendHistory(ctx context.Context, aggregate *parcel.Parcel) error {
	pending := aggregate.PopPendingHistory()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]HistoryDTO, 0, len(pending))
	for _, change := range pending {
		dtos = append(dtos, historyFromDomain(change))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
