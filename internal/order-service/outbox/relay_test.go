package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
)

type fakeOutbox struct {
	mu      sync.Mutex
	entries []history.Entry
}

func (f *fakeOutbox) Pending(_ context.Context, limit, maxAttempts int) ([]history.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []history.Entry
	for _, e := range f.entries {
		if e.PublishedAt == nil && e.Attempts < maxAttempts && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeOutbox) MarkPublished(_ context.Context, id int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].PublishedAt = &at
		}
	}
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, id int64, cause string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Attempts++
			f.entries[i].LastError = cause
		}
	}
	return nil
}

type published struct {
	topic, key string
	body       string
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
	fail map[string]bool
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail[key] {
		return errors.New("broker unavailable")
	}
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	p.sent = append(p.sent, published{topic: topic, key: key, body: string(b)})
	return nil
}

func entry(id int64, orderID string) history.Entry {
	return history.Entry{ID: id, OrderID: orderID, Payload: `{"type":"ORDER_CREATED","orderId":"` + orderID + `"}`}
}

func newTestRelay(t *testing.T, ob history.Outbox, pub *fakePublisher, maxAttempts int) *Relay {
	t.Helper()
	r, err := NewRelay(ob, pub, Config{Topic: "orders.events", PollInterval: 10 * time.Millisecond, BatchSize: 10, MaxAttempts: maxAttempts})
	require.NoError(t, err)
	return r
}

func TestProcessBatch(t *testing.T) {
	ob := &fakeOutbox{entries: []history.Entry{entry(1, "o-1"), entry(2, "o-2")}}
	pub := &fakePublisher{}
	r := newTestRelay(t, ob, pub, 3)

	n, err := r.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, pub.sent, 2)
	assert.Equal(t, "orders.events", pub.sent[0].topic)
	assert.Equal(t, "o-1", pub.sent[0].key)
	assert.JSONEq(t, ob.entries[0].Payload, pub.sent[0].body)

	n, err = r.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessBatch_RetriesUntilMaxAttempts(t *testing.T) {
	ob := &fakeOutbox{entries: []history.Entry{entry(1, "bad"), entry(2, "good")}}
	pub := &fakePublisher{fail: map[string]bool{"bad": true}}
	r := newTestRelay(t, ob, pub, 2)

	for i := 0; i < 3; i++ {
		_, err := r.ProcessBatch(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 2, ob.entries[0].Attempts)
	assert.Equal(t, "broker unavailable", ob.entries[0].LastError)
	assert.Nil(t, ob.entries[0].PublishedAt)
	assert.NotNil(t, ob.entries[1].PublishedAt)
	assert.Len(t, pub.sent, 1)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ob := &fakeOutbox{entries: []history.Entry{entry(1, "o-1")}}
	pub := &fakePublisher{}
	r := newTestRelay(t, ob, pub, 3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.sent) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestNewRelay_Validation(t *testing.T) {
	_, err := NewRelay(nil, &fakePublisher{}, Config{Topic: "t", PollInterval: time.Second, BatchSize: 1, MaxAttempts: 1})
	assert.Error(t, err)

	_, err = NewRelay(&fakeOutbox{}, &fakePublisher{}, Config{Topic: "t", BatchSize: 1, MaxAttempts: 1})
	assert.Error(t, err)
}
