package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents warehouse intake of a parcel addressed to
// a client's proxy mailing address.
//
// Example:
//
//	code, _ := kernel.ParseAddressCode("HT-MIA-00042/A")
//	cmd, err := NewCreateParcelCommand(code, parcel.Attributes{
//	    Carrier:     "UPS",
//	    Description: "Laptop",
//	}, "agent-7")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, categories, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	addressCode kernel.AddressCode
	attrs       parcel.Attributes
	createdBy   string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel at intake.
func NewCreateParcelCommand(addressCode kernel.AddressCode, attrs parcel.Attributes, createdBy string) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAddressCode(addressCode),
		command.setCreatedBy(createdBy),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	command.attrs = attrs
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// AddressCode returns the proxy address the parcel was shipped to.
func (c CreateParcelCommand) AddressCode() kernel.AddressCode {
	return c.addressCode
}

// Attributes returns the optional intake attributes.
func (c CreateParcelCommand) Attributes() parcel.Attributes {
	return c.attrs
}

// CreatedBy returns the operator registering the parcel.
func (c CreateParcelCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateParcelCommand) setAddressCode(addressCode kernel.AddressCode) error {
	if err := addressCode.Validate(); err != nil {
		return err
	}

	c.addressCode = addressCode
	return nil
}

func (c *CreateParcelCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}

	c.createdBy = createdBy
	return nil
}
