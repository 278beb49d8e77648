package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrDeactivateHubCommandIsNotConstructed = errors.New(
		"DeactivateHubCommand must be created via NewDeactivateHubCommand constructor",
	)
)

// DeactivateHubCommand represents an administrative request to stop a hub
// from issuing new addresses. Addresses already allocated at the hub stay
// usable.
type DeactivateHubCommand struct { //nolint:recvcheck //using for validation
	hub kernel.HubCode

	guard guard.ConstructorGuard
}

// NewDeactivateHubCommand creates a command to deactivate a hub.
func NewDeactivateHubCommand(hub kernel.HubCode) (DeactivateHubCommand, error) {
	if err := hub.Validate(); err != nil {
		return DeactivateHubCommand{}, err
	}

	return DeactivateHubCommand{
		hub:   hub,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateHubCommandIsNotConstructed if validation fails.
func (c DeactivateHubCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateHubCommandIsNotConstructed)
}

// Hub returns the 3-letter hub code.
func (c DeactivateHubCommand) Hub() kernel.HubCode {
	return c.hub
}
