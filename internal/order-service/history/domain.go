// Package history defines the domain types for the order history log.
//
// The history log is an append-only audit trail of every change made to an
// order. It serves two purposes:
//
//  1. Observability: you can query the DB to see who changed an order, when,
//     and correlate it with a distributed trace via the trace_id field.
//
//  2. Transactional outbox: each entry is written in the same transaction as
//     the order itself, and the outbox relay publishes entries that have not
//     been published yet. An event is therefore emitted if and only if the
//     change was committed.
package history

import (
	"context"
	"time"
)

// Action names the kind of change recorded by an entry.
type Action string

const (
	ActionCreated       Action = "ORDER_CREATED"
	ActionStatusUpdated Action = "ORDER_STATUS_UPDATED"
	ActionCancelled     Action = "ORDER_CANCELLED"
)

// Entry is a single row in the order_history table.
type Entry struct {
	// ID is the surrogate key assigned by the store. Zero until saved.
	ID int64

	// EventID is a globally unique identifier consumers use for dedup.
	EventID string

	// OrderID ties the entry to its order.
	OrderID string

	Action Action

	// FromStatus and ToStatus are status names. FromStatus is empty on
	// creation.
	FromStatus string
	ToStatus   string

	// SubjectID is the caller that made the change.
	SubjectID string

	// Payload is the JSON-serialised event body published by the relay.
	Payload string

	// TraceID is the W3C trace ID extracted from the OpenTelemetry span that
	// was active when this entry was written.
	TraceID string

	// SpanID is the specific span within the trace.
	SpanID string

	CreatedAt time.Time

	// PublishedAt is set by the outbox relay once the event is delivered.
	PublishedAt *time.Time

	// Attempts counts failed publish attempts.
	Attempts int

	// LastError is the most recent publish failure.
	LastError string
}

// Published reports whether the relay has delivered the entry.
func (e *Entry) Published() bool {
	return e.PublishedAt != nil
}

// Outbox is the port used by the relay. The order repository implements it
// against the same table the entries are written to.
type Outbox interface {
	// Pending returns up to limit unpublished entries with fewer than
	// maxAttempts failures, oldest first.
	Pending(ctx context.Context, limit, maxAttempts int) ([]Entry, error)

	// MarkPublished records a successful delivery.
	MarkPublished(ctx context.Context, id int64, at time.Time) error

	// MarkFailed increments the attempt counter and records cause.
	MarkFailed(ctx context.Context, id int64, cause string) error
}
