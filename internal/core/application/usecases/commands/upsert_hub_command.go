package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrUpsertHubCommandIsNotConstructed = errors.New(
		"UpsertHubCommand must be created via NewUpsertHubCommand constructor",
	)
)

// UpsertHubCommand represents an administrative request to register a
// forwarding hub or replace its reference data. Already-allocated client
// addresses keep the US address copy they were issued with.
type UpsertHubCommand struct { //nolint:recvcheck //using for validation
	hub       kernel.HubCode
	hubName   string
	usAddress address.USAddress

	guard guard.ConstructorGuard
}

// NewUpsertHubCommand creates a command to register or update a hub.
func NewUpsertHubCommand(hub kernel.HubCode, hubName string, usAddress address.USAddress) (UpsertHubCommand, error) {
	command := UpsertHubCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHub(hub),
		command.setHubName(hubName),
		command.setUSAddress(usAddress),
	); err != nil {
		return UpsertHubCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertHubCommandIsNotConstructed if validation fails.
func (c UpsertHubCommand) Validate() error {
	return c.guard.Validate(ErrUpsertHubCommandIsNotConstructed)
}

// Hub returns the 3-letter hub code.
func (c UpsertHubCommand) Hub() kernel.HubCode {
	return c.hub
}

// HubName returns the hub display name.
func (c UpsertHubCommand) HubName() string {
	return c.hubName
}

// USAddress returns the hub's physical US intake address.
func (c UpsertHubCommand) USAddress() address.USAddress {
	return c.usAddress
}

func (c *UpsertHubCommand) setHub(hub kernel.HubCode) error {
	if err := hub.Validate(); err != nil {
		return err
	}

	c.hub = hub
	return nil
}

func (c *UpsertHubCommand) setHubName(hubName string) error {
	if hubName == "" {
		return errs.NewValueIsRequiredError("hubName")
	}

	c.hubName = hubName
	return nil
}

func (c *UpsertHubCommand) setUSAddress(usAddress address.USAddress) error {
	if err := usAddress.Validate(); err != nil {
		return err
	}

	c.usAddress = usAddress
	return nil
}
