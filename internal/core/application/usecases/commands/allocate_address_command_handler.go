package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// AllocateAddressCommandHandler orchestrates address allocation.
//
// The whole allocation runs in one transaction. The hub counter lock is
// taken before anything else, so concurrent allocations at the same hub
// serialize completely: the duplicate-address check and the insert happen
// under the lock, per-hub sequences stay dense, and a rollback reverts the
// sequence increment. Allocations at distinct hubs proceed in parallel.
type AllocateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	users      ports.UserDirectory
}

// NewAllocateAddressCommandHandler creates a handler for address allocation.
func NewAllocateAddressCommandHandler(uowFactory AddressUoWFactory, users ports.UserDirectory) AllocateAddressCommandHandler {
	return AllocateAddressCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the allocation command and returns the issued address.
//
// Fails with ObjectNotFoundError when the user is unknown or the hub is
// unknown or inactive, and with ConflictError (carrying the existing code)
// when the user already holds an active address at the hub.
func (h AllocateAddressCommandHandler) Handle(ctx context.Context, cmd AllocateAddressCommand) (*address.CustomAddress, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := h.users.FindUser(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID().String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hub, err := uow.HubRepository().GetByCode(ctx, cmd.Hub())
	if err != nil {
		return nil, err
	}
	if !hub.IsActive() {
		return nil, errs.NewObjectNotFoundError("hub", cmd.Hub().String())
	}

	// Lock first. Holding the hub counter serializes the duplicate check
	// and the insert for this hub until commit.
	sequence, err := uow.CounterRepository().Next(ctx, ports.CounterAddress, cmd.Hub().String())
	if err != nil {
		return nil, err
	}

	existing, err := uow.AddressRepository().FindActiveByUserAndHub(ctx, cmd.UserID(), cmd.Hub())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("address",
			fmt.Sprintf("user already has an active address at this hub: %s", existing.Code()))
	}

	allocated, err := address.NewCustomAddress(
		kernel.NewUUID(), cmd.UserID(), cmd.Hub(), sequence, hub.USAddress())
	if err != nil {
		return nil, err
	}

	if err = uow.AddressRepository().Add(ctx, allocated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return allocated, nil
}
