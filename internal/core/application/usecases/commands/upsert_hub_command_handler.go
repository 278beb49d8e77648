package commands

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// UpsertHubCommandHandler handles hub reference-data maintenance. An
// unknown hub code creates a new record; a known one has its name and US
// address replaced and is reactivated.
type UpsertHubCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpsertHubCommandHandler creates a handler for hub maintenance
// operations.
func NewUpsertHubCommandHandler(uowFactory AddressUoWFactory) UpsertHubCommandHandler {
	return UpsertHubCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hub upsert command.
func (h UpsertHubCommandHandler) Handle(ctx context.Context, cmd UpsertHubCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubRepo := uow.HubRepository()

	hub, err := hubRepo.GetByCode(ctx, cmd.Hub())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		hub, err = address.NewHubAddress(kernel.NewUUID(), cmd.Hub(), cmd.HubName(), cmd.USAddress())
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = hub.Update(cmd.HubName(), cmd.USAddress()); err != nil {
			return err
		}
	}

	if err = hubRepo.Upsert(ctx, hub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
