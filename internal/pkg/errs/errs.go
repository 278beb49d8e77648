package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for every error type in this
// package. Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInsufficientAmount = errors.New("insufficient amount")
	ErrAlreadySettled     = errors.New("invoice already settled")
)

// sanitize strips newlines from values embedded in error messages so that
// a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that triggered it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid,
		sanitize(fmt.Sprintf("%v", e.Value)),
		e.ParamName,
		sanitize(fmt.Sprintf("%v", e.Min)),
		sanitize(fmt.Sprintf("%v", e.Max)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError indicates that an operation would violate a uniqueness rule,
// such as allocating a second active address for the same user and hub.
// Detail carries enough context for the caller to render guidance, e.g. the
// address code that already exists.
type ConflictError struct {
	ParamName string
	Detail    string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName, detail string) ConflictError {
	return ConflictError{ParamName: paramName, Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause, typically a unique-constraint violation from storage.
func NewConflictErrorWithCause(paramName, detail string, cause error) ConflictError {
	return ConflictError{ParamName: paramName, Detail: detail, Cause: cause}
}

func (e ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %s)", ErrConflict, e.ParamName, sanitize(e.Detail), e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConflict, e.ParamName, sanitize(e.Detail))
}

func (e ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError indicates a status change that the lifecycle state
// machine does not permit. It always carries the current status and the full
// set of allowed destinations so callers can render precise guidance.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Allowed   []string
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(current, requested string, allowed []string) InvalidTransitionError {
	return InvalidTransitionError{Current: current, Requested: requested, Allowed: allowed}
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s, allowed transitions: %s",
		ErrInvalidTransition, e.Current, e.Requested, strings.Join(e.Allowed, ", "))
}

func (e InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientAmountError indicates a payment that does not cover the
// invoice total.
type InsufficientAmountError struct {
	Amount   string
	Required string
}

// NewInsufficientAmountError creates an InsufficientAmountError. Amounts are
// passed as formatted strings so the package stays free of money types.
func NewInsufficientAmountError(amount, required string) InsufficientAmountError {
	return InsufficientAmountError{Amount: amount, Required: required}
}

func (e InsufficientAmountError) Error() string {
	return fmt.Sprintf("%s: payment amount (%s) is less than invoice total (%s)",
		ErrInsufficientAmount, e.Amount, e.Required)
}

func (e InsufficientAmountError) Unwrap() error {
	return ErrInsufficientAmount
}

// AlreadySettledError indicates an attempt to pay an invoice that is
// already PAID.
type AlreadySettledError struct {
	InvoiceNumber string
}

// NewAlreadySettledError creates an AlreadySettledError.
func NewAlreadySettledError(invoiceNumber string) AlreadySettledError {
	return AlreadySettledError{InvoiceNumber: invoiceNumber}
}

func (e AlreadySettledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadySettled, e.InvoiceNumber)
}

func (e AlreadySettledError) Unwrap() error {
	return ErrAlreadySettled
}
