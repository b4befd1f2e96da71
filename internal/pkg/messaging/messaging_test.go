package messaging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := LoggingPublisher{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	err := p.PublishEvent(context.Background(), "orders.events", "o-1", map[string]string{"type": "ORDER_CREATED"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "topic=orders.events")
	assert.Contains(t, out, "key=o-1")
	assert.Contains(t, out, "ORDER_CREATED")
}

func TestLoggingPublisher_UnencodableEvent(t *testing.T) {
	p := LoggingPublisher{}
	err := p.PublishEvent(context.Background(), "t", "k", make(chan int))
	assert.Error(t, err)
}
