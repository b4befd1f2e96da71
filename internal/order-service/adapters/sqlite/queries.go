package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/ports"
)

// Summaries lists the orders matching f, newest first.
func (r *Repository) Summaries(ctx context.Context, f ports.Filter) ([]domain.Summary, error) {
	where, args := filterClause(f)
	q := `
		SELECT o.id, o.owner_id, o.customer_name, o.customer_email, o.total_amount, o.status, o.created_at,
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)
		FROM   orders o` + where + `
		ORDER  BY o.created_at DESC, o.id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}
	defer rows.Close()

	out := []domain.Summary{}
	for rows.Next() {
		var (
			s       domain.Summary
			created string
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.CustomerName, &s.CustomerEmail, &s.TotalAmount, &s.Status, &created, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("sqlite: scan order summary: %w", err)
		}
		if s.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}
	return out, nil
}

// Count counts the orders matching f.
func (r *Repository) Count(ctx context.Context, f ports.Filter) (int, error) {
	where, args := filterClause(f)
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders o`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count orders: %w", err)
	}
	return n, nil
}

// History lists an order's entries in the order they were written.
func (r *Repository) History(ctx context.Context, orderID string) ([]history.Entry, error) {
	return r.entries(ctx, `WHERE order_id = ? ORDER BY id`, orderID)
}

func (r *Repository) entries(ctx context.Context, tail string, args ...any) ([]history.Entry, error) {
	q := `
		SELECT id, event_id, order_id, action, from_status, to_status, subject_id, payload,
		       trace_id, span_id, created_at, published_at, attempts, last_error
		FROM   order_history ` + tail

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list history: %w", err)
	}
	defer rows.Close()

	out := []history.Entry{}
	for rows.Next() {
		var (
			e         history.Entry
			created   string
			published *string
		)
		err := rows.Scan(&e.ID, &e.EventID, &e.OrderID, &e.Action, &e.FromStatus, &e.ToStatus, &e.SubjectID, &e.Payload,
			&e.TraceID, &e.SpanID, &created, &published, &e.Attempts, &e.LastError)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan history: %w", err)
		}
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if e.PublishedAt, err = parseNullableTime(published); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list history: %w", err)
	}
	return out, nil
}

// filterClause renders f as a WHERE clause over the alias o. Timestamps are
// fixed-width TEXT, so string comparison is chronological.
func filterClause(f ports.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.OwnerID != "" {
		conds = append(conds, "o.owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if len(f.Statuses) > 0 {
		marks := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			marks[i] = "?"
			args = append(args, int(s))
		}
		conds = append(conds, "o.status IN ("+strings.Join(marks, ", ")+")")
	}
	if f.Window.Start != nil {
		conds = append(conds, "o.created_at >= ?")
		args = append(args, formatTime(*f.Window.Start))
	}
	if f.Window.End != nil {
		conds = append(conds, "o.created_at <= ?")
		args = append(args, formatTime(*f.Window.End))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE  " + strings.Join(conds, " AND "), args
}
