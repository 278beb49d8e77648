package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/parcel"
)

// UpdateParcelCommandHandler rewrites a parcel's descriptive attributes
// without moving it through the lifecycle.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler with the provided unit
// of work factory.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{uowFactory: uowFactory}
}

// Handle loads the parcel, replaces its attributes and persists the
// result. The parcel's status and history are left untouched.
func (h UpdateParcelCommandHandler) Handle(ctx context.Context, command UpdateParcelCommand) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateAttributes(command.Attributes()); err != nil {
		return nil, err
	}

	if err := uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return aggregate, nil
}
