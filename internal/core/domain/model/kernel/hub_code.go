package kernel

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

// ErrHubCodeIsNotConstructed indicates a zero-value HubCode that was not
// created via NewHubCode.
var ErrHubCodeIsNotConstructed = errs.NewValueIsRequiredError("HubCode must be created via NewHubCode")

const hubCodeLength = 3

// HubCode is a value object identifying a forwarding hub by its 3-letter
// code, e.g. "MIA" or "NMB". The code is always upper case.
//
// The zero value is invalid; construct through NewHubCode.
type HubCode struct {
	code string
}

// NewHubCode validates and creates a HubCode. The input must be exactly
// three ASCII letters; case is normalized to upper.
func NewHubCode(code string) (HubCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != hubCodeLength {
		return HubCode{}, errs.NewValueIsInvalidErrorWithCause("hub",
			fmt.Errorf("%q is not a 3-letter hub code", code))
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return HubCode{}, errs.NewValueIsInvalidErrorWithCause("hub",
				fmt.Errorf("%q contains a non-letter character", code))
		}
	}
	return HubCode{code: code}, nil
}

// String returns the upper-case 3-letter code.
func (h HubCode) String() string {
	return h.code
}

// IsEqual compares two hub codes for equality.
func (h HubCode) IsEqual(other HubCode) bool {
	return h.code == other.code
}

// Validate checks that the HubCode was properly constructed.
func (h HubCode) Validate() error {
	if h.code == "" {
		return ErrHubCodeIsNotConstructed
	}
	return nil
}
