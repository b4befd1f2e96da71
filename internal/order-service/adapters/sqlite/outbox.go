package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
)

// Pending returns unpublished entries that have not exhausted their retries,
// oldest first.
func (r *Repository) Pending(ctx context.Context, limit, maxAttempts int) ([]history.Entry, error) {
	return r.entries(ctx, `WHERE published_at IS NULL AND attempts < ? ORDER BY id LIMIT ?`, maxAttempts, limit)
}

// MarkPublished records a successful delivery of entry id.
func (r *Repository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE order_history SET published_at = ?, last_error = '' WHERE id = ?`,
		formatTime(at), id)
	if err != nil {
		return fmt.Errorf("sqlite: mark entry %d published: %w", id, err)
	}
	return nil
}

// MarkFailed increments the attempt counter of entry id.
func (r *Repository) MarkFailed(ctx context.Context, id int64, cause string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE order_history SET attempts = attempts + 1, last_error = ? WHERE id = ?`,
		cause, id)
	if err != nil {
		return fmt.Errorf("sqlite: mark entry %d failed: %w", id, err)
	}
	return nil
}
