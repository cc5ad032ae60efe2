package kernel

import (
	"slices"
	"time"
)

// DomainEvent is a fact an aggregate recorded while changing state. The
// postgres unit of work stores pending events in the outbox inside the
// committing transaction.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// AggregateRoot is what repositories hand to the unit of work for event collection.
type AggregateRoot interface {
	ID() UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// Event carries the envelope fields every concrete event embeds.
type Event struct {
	ID        UUID      `json:"eventId"`
	Name      string    `json:"eventName"`
	Aggregate UUID      `json:"aggregateId"`
	At        time.Time `json:"occurredAt"`
}

func NewEvent(name string, aggregateID UUID, at time.Time) Event {
	return Event{
		ID:        NewUUID(),
		Name:      name,
		Aggregate: aggregateID,
		At:        at.UTC(),
	}
}

func (e Event) EventID() UUID {
	return e.ID
}

func (e Event) EventName() string {
	return e.Name
}

func (e Event) AggregateID() UUID {
	return e.Aggregate
}

func (e Event) OccurredAt() time.Time {
	return e.At
}

// EventRecorder accumulates events for one aggregate instance. Aggregates
// keep it as a private field and expose DomainEvents/ClearDomainEvents.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) Events() []DomainEvent {
	return slices.Clone(r.events)
}

func (r *EventRecorder) Clear() {
	r.events = nil
}
