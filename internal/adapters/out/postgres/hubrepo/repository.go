package hubrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHubRepository implements HubRepository using GORM.
type GormHubRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHubRepository creates a new GORM hub repository.
func NewGormHubRepository(db *gorm.DB, tracker aggregateTracker) *GormHubRepository {
	return &GormHubRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert creates or replaces the hub record keyed by hub code.
func (r *GormHubRepository) Upsert(ctx context.Context, hub *address.HubAddress) error {
	if err := hub.Validate(); err != nil {
		return err
	}

	dto := fromDomain(hub)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hub"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(hub.ID(), hub)
	return nil
}

// GetByCode retrieves a hub by its 3-letter code.
func (r *GormHubRepository) GetByCode(ctx context.Context, code kernel.HubCode) (*address.HubAddress, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "hub = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hub", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered hub.
func (r *GormHubRepository) GetAll(ctx context.Context) ([]*address.HubAddress, error) {
	var dtos []HubDTO
	if err := r.db.WithContext(ctx).Order("hub").Find(&dtos).Error; err != nil {
		return nil, err
	}

	hubs := make([]*address.HubAddress, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, h)
	}

	return hubs, nil
}
