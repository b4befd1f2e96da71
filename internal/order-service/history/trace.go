package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	// TraceID is the W3C trace ID (32 lowercase hex chars).
	// Empty string if no active span is found in the context.
	TraceID string

	// SpanID is the W3C span ID (16 lowercase hex chars).
	SpanID string
}

// ExtractTraceInfo reads the active OpenTelemetry span from ctx and returns
// its trace_id and span_id as hex strings. Without an active span (unit
// tests, seeding) both fields are empty.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// Event is the JSON body published for every entry.
type Event struct {
	EventID    string    `json:"eventId"`
	Type       Action    `json:"type"`
	OrderID    string    `json:"orderId"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	SubjectID  string    `json:"subjectId"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEntry builds an Entry with the trace info extracted from ctx and the
// event payload already serialised.
//
//	entry, err := history.NewEntry(ctx, history.ActionCancelled, o.ID, "Pending", "Cancelled", subject, nil, now)
func NewEntry(
	ctx context.Context,
	action Action,
	orderID string,
	from, to string,
	subjectID string,
	data any,
	now time.Time,
) (*Entry, error) {
	ti := ExtractTraceInfo(ctx)
	now = now.UTC()

	ev := Event{
		EventID:    uuid.NewString(),
		Type:       action,
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		SubjectID:  subjectID,
		Data:       data,
		OccurredAt: now,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("history: encode %s event for %q: %w", action, orderID, err)
	}

	return &Entry{
		EventID:    ev.EventID,
		OrderID:    orderID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		SubjectID:  subjectID,
		Payload:    string(payload),
		TraceID:    ti.TraceID,
		SpanID:     ti.SpanID,
		CreatedAt:  now,
	}, nil
}
