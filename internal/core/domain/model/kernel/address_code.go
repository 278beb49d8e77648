package kernel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// ErrAddressCodeIsNotConstructed indicates a zero-value AddressCode that was
// not created via ComposeAddressCode or ParseAddressCode.
var ErrAddressCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"AddressCode must be created via ComposeAddressCode or ParseAddressCode")

// addressCodeUnit is the suite qualifier appended to every client address.
// The current model assigns a single unit per client.
const addressCodeUnit = "A"

// AddressCode is a value object for a client's proxy mailing-address code.
// The wire format is HT-<hub>-<NNNNN>/A where NNNNN is the hub-local client
// sequence zero-padded to five digits. Codes are globally unique and
// immutable once issued.
type AddressCode struct {
	value string
}

// ComposeAddressCode builds the address code for a hub and sequence value.
//
//	ComposeAddressCode(mia, 1) // "HT-MIA-00001/A"
func ComposeAddressCode(hub HubCode, sequence int64) (AddressCode, error) {
	if err := hub.Validate(); err != nil {
		return AddressCode{}, err
	}
	if sequence <= 0 {
		return AddressCode{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	return AddressCode{value: fmt.Sprintf("HT-%s-%05d/%s", hub, sequence, addressCodeUnit)}, nil
}

// ParseAddressCode validates an externally supplied address code string.
func ParseAddressCode(s string) (AddressCode, error) {
	var hub string
	var sequence int64
	var unit string
	if _, err := fmt.Sscanf(s, "HT-%3s-%5d/%s", &hub, &sequence, &unit); err != nil {
		return AddressCode{}, errs.NewValueIsInvalidErrorWithCause("addressCode",
			fmt.Errorf("%q does not match HT-<hub>-<seq>/%s: %w", s, addressCodeUnit, err))
	}
	hubCode, err := NewHubCode(hub)
	if err != nil {
		return AddressCode{}, err
	}
	return ComposeAddressCode(hubCode, sequence)
}

// String returns the full address code.
func (a AddressCode) String() string {
	return a.value
}

// IsEqual compares two address codes for equality.
func (a AddressCode) IsEqual(other AddressCode) bool {
	return a.value == other.value
}

// Validate checks that the AddressCode was properly constructed.
func (a AddressCode) Validate() error {
	if a.value == "" {
		return ErrAddressCodeIsNotConstructed
	}
	return nil
}
