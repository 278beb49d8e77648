package kernel

// DomainEvent is a fact about a state change that an aggregate wants
// published after the transaction that produced it commits. Events carry
// only identifiers and plain values; handlers re-read whatever state they
// need.
type DomainEvent interface {
	// EventName returns a stable, human-readable event identifier,
	// e.g. "parcel.received".
	EventName() string
}

// EventRaiser collects domain events raised by an aggregate during a
// business operation. Aggregates embed it; the unit of work drains the
// events after a successful commit and hands them to the dispatcher.
//
// EventRaiser is not safe for concurrent use; an aggregate instance is
// owned by a single operation at a time.
type EventRaiser struct {
	events []DomainEvent
}

// Raise records an event for post-commit publishing.
func (r *EventRaiser) Raise(event DomainEvent) {
	r.events = append(r.events, event)
}

// PopEvents returns all raised events and clears the internal list, so the
// same event is never published twice.
func (r *EventRaiser) PopEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}
