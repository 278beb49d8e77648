package addressrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint
// violations.
const uniqueViolation = "23505"

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly allocated address to the database. A duplicate address
// code surfaces as a ConflictError.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.CustomAddress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("addressCode", aggregate.Code().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing address to the database.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.CustomAddress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).Where("id = ?", dto.ID).
		Select("Status", "IsPrimary", "DeactivatedAt").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.CustomAddress, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an address by its full code string.
func (r *GormAddressRepository) GetByCode(ctx context.Context, code kernel.AddressCode) (*address.CustomAddress, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "address_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveByUserAndHub returns the user's ACTIVE address at the hub, or
// nil when the user holds none.
func (r *GormAddressRepository) FindActiveByUserAndHub(ctx context.Context, userID kernel.UUID, hub kernel.HubCode) (*address.CustomAddress, error) {
	if err := errors.Join(userID.Validate(), hub.Validate()); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND hub = ? AND status = ?",
			userID.Bytes(), hub.String(), address.Active.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return aggregate, nil
}

// GetAllForUser retrieves every address of a user, newest first.
func (r *GormAddressRepository) GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*address.CustomAddress, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	err := r.db.WithContext(ctx).
		Order("generated_at DESC").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*address.CustomAddress, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}

// GetPrimaryForUser retrieves the user's primary active address, or nil
// when the user has none.
func (r *GormAddressRepository) GetPrimaryForUser(ctx context.Context, userID kernel.UUID) (*address.CustomAddress, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND is_primary = ? AND status = ?",
			userID.Bytes(), true, address.Active.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return aggregate, nil
}
