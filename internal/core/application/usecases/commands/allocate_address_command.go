package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrAllocateAddressCommandIsNotConstructed = errors.New(
		"AllocateAddressCommand must be created via NewAllocateAddressCommand constructor",
	)
)

// AllocateAddressCommand represents a request to issue a new proxy mailing
// address for a user at a forwarding hub.
//
// Example:
//
//	hub, _ := kernel.NewHubCode("MIA")
//	cmd, err := NewAllocateAddressCommand(userID, hub)
//	if err != nil {
//	    return fmt.Errorf("invalid allocation request: %w", err)
//	}
//
//	handler := NewAllocateAddressCommandHandler(uowFactory, users)
//	allocated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // User already holds an active address at this hub
//	    return err
//	}
type AllocateAddressCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	hub    kernel.HubCode

	guard guard.ConstructorGuard
}

// NewAllocateAddressCommand creates a command to allocate an address.
// Validates that the user ID and hub code are properly constructed.
func NewAllocateAddressCommand(userID kernel.UUID, hub kernel.HubCode) (AllocateAddressCommand, error) {
	command := AllocateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setHub(hub),
	); err != nil {
		return AllocateAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateAddressCommandIsNotConstructed if validation fails.
func (c AllocateAddressCommand) Validate() error {
	return c.guard.Validate(ErrAllocateAddressCommandIsNotConstructed)
}

// UserID returns the user the address is allocated for.
func (c AllocateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

// Hub returns the hub the address is allocated at.
func (c AllocateAddressCommand) Hub() kernel.HubCode {
	return c.hub
}

func (c *AllocateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AllocateAddressCommand) setHub(hub kernel.HubCode) error {
	if err := hub.Validate(); err != nil {
		return err
	}

	c.hub = hub
	return nil
}
