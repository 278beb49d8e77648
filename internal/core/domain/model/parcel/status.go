package parcel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel in the fulfillment
// pipeline. It implements a state machine whose transitions are defined as
// a table of allowed-destination sets; a transition is legal exactly when
// the destination is a member of the source's set.
//
// Pipeline (happy path):
//
//	PENDING -> RECEIVED -> PROCESSING -> READY -> SHIPPED -> IN_TRANSIT
//	        -> CUSTOMS -> OUT_FOR_DELIVERY -> DELIVERED
//
// EXCEPTION is reachable from every in-flight state and recovers to
// PROCESSING or terminates in RETURNED/CANCELLED. DELIVERED, RETURNED and
// CANCELLED are terminal.
type Status string

const (
	Pending        Status = "PENDING"
	Received       Status = "RECEIVED"
	Processing     Status = "PROCESSING"
	Ready          Status = "READY"
	Shipped        Status = "SHIPPED"
	InTransit      Status = "IN_TRANSIT"
	Customs        Status = "CUSTOMS"
	OutForDelivery Status = "OUT_FOR_DELIVERY"
	Delivered      Status = "DELIVERED"
	Exception      Status = "EXCEPTION"
	Returned       Status = "RETURNED"
	Cancelled      Status = "CANCELLED"
)

// statusTransitions is the single source of truth for the lifecycle state
// machine. Terminal states map to empty sets.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Received, Cancelled},
		Received:       {Processing, Cancelled},
		Processing:     {Ready, Exception},
		Ready:          {Shipped, Exception},
		Shipped:        {InTransit, Exception},
		InTransit:      {Customs, OutForDelivery, Exception},
		Customs:        {OutForDelivery, Exception},
		OutForDelivery: {Delivered, Exception},
		Delivered:      {},
		Exception:      {Processing, Returned, Cancelled},
		Returned:       {},
		Cancelled:      {},
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid parcel status", string(s)))
	}
	return nil
}

// IsTerminal reports whether no outgoing transitions exist for the status.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowedTransitions returns the full set of destinations reachable from
// the status. The returned slice is a copy and safe to mutate.
func (s Status) AllowedTransitions() []Status {
	allowed := statusTransitions()[s]
	return append([]Status(nil), allowed...)
}

// CanTransitionTo reports whether moving to next is permitted by the
// transition table. Membership check only; no status-specific conditionals.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to next and returns next on success.
// On failure the error carries the current status and the full
// allowed-destination list so callers can render precise guidance.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		allowed := make([]string, 0, len(statusTransitions()[s]))
		for _, a := range s.AllowedTransitions() {
			allowed = append(allowed, a.String())
		}
		return "", errs.NewInvalidTransitionError(s.String(), next.String(), allowed)
	}
	return next, nil
}
