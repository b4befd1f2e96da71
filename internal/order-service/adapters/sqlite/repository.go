// Package sqlite provides a SQLite-backed implementation of
// ports.OrderRepository and history.Outbox.
//
// WAL mode is enabled on Open so that readers never block writers. Mutations
// run in IMMEDIATE transactions over a single connection, which serialises
// every read-modify-write on an order.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/ports"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"

	// Register the pure-Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Repository is the SQLite implementation of ports.OrderRepository.
type Repository struct {
	db *sql.DB
}

var (
	_ ports.OrderRepository = (*Repository)(nil)
	_ history.Outbox        = (*Repository)(nil)
)

// Open opens (or creates) the SQLite database at path and applies the schema.
// Use ":memory:" for a throwaway database.
//
//	repo, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Repository, error) {
	// _txlock=immediate makes BeginTx take the write lock up front, so two
	// concurrent Mutate calls cannot both read the same version.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)&_txlock=immediate", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection. It also keeps a
	// :memory: database alive for the lifetime of the pool.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ping checks the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts order, its items and the creation entry in one transaction.
func (r *Repository) Create(ctx context.Context, order *domain.Order, entry *history.Entry) error {
	if err := order.CheckInvariants(); err != nil {
		return err
	}
	return r.inTx(ctx, "create order", func(tx *sql.Tx) error {
		if err := insertOrder(ctx, tx, order); err != nil {
			return err
		}
		return insertEntry(ctx, tx, entry)
	})
}

// Get loads one order with its items.
func (r *Repository) Get(ctx context.Context, id, ownerID string) (*domain.Order, error) {
	return getOrder(ctx, r.db, id, ownerID)
}

// Mutate runs fn against the current version of the order and stores the
// result inside a single transaction.
func (r *Repository) Mutate(ctx context.Context, id, ownerID string, fn ports.MutateFunc) (*domain.Order, error) {
	var out *domain.Order
	err := r.inTx(ctx, "mutate order", func(tx *sql.Tx) error {
		order, err := getOrder(ctx, tx, id, ownerID)
		if err != nil {
			return err
		}
		entry, err := fn(order)
		if err != nil {
			return err
		}
		if err := order.CheckInvariants(); err != nil {
			return err
		}
		if err := updateOrder(ctx, tx, order); err != nil {
			return err
		}
		if entry != nil {
			if err := insertEntry(ctx, tx, entry); err != nil {
				return err
			}
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getOrder(ctx context.Context, q queryer, id, ownerID string) (*domain.Order, error) {
	const query = `
		SELECT id, owner_id, customer_name, customer_email, shipping_address, billing_address,
		       subtotal, tax_amount, shipping_cost, total_amount, status,
		       payment_method, payment_reference, tracking_number, notes,
		       shipped_date, delivered_date, created_at, updated_at
		FROM   orders
		WHERE  id = ? AND (? = '' OR owner_id = ?)`

	var (
		o                  domain.Order
		shipped, delivered *string
		created, updated   string
	)
	err := q.QueryRowContext(ctx, query, id, ownerID, ownerID).Scan(
		&o.ID, &o.OwnerID, &o.CustomerName, &o.CustomerEmail, &o.ShippingAddress, &o.BillingAddress,
		&o.Subtotal, &o.TaxAmount, &o.ShippingCost, &o.TotalAmount, &o.Status,
		&o.PaymentMethod, &o.PaymentReference, &o.TrackingNumber, &o.Notes,
		&shipped, &delivered, &created, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get order %q: %w", id, err)
	}

	if o.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if o.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	if o.ShippedDate, err = parseNullableTime(shipped); err != nil {
		return nil, err
	}
	if o.DeliveredDate, err = parseNullableTime(delivered); err != nil {
		return nil, err
	}

	if o.Items, err = getItems(ctx, q, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func getItems(ctx context.Context, q queryer, orderID string) ([]domain.LineItem, error) {
	const query = `
		SELECT product_id, product_name, sku, quantity, unit_price, line_total, image_url
		FROM   order_items
		WHERE  order_id = ?
		ORDER  BY position`

	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: get items for %q: %w", orderID, err)
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.SKU, &it.Quantity, &it.UnitPrice, &it.LineTotal, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("sqlite: scan item for %q: %w", orderID, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: get items for %q: %w", orderID, err)
	}
	return items, nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, o *domain.Order) error {
	const q = `
		INSERT INTO orders
			(id, owner_id, customer_name, customer_email, shipping_address, billing_address,
			 subtotal, tax_amount, shipping_cost, total_amount, status,
			 payment_method, payment_reference, tracking_number, notes,
			 shipped_date, delivered_date, created_at, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, q,
		o.ID, o.OwnerID, o.CustomerName, o.CustomerEmail, o.ShippingAddress, o.BillingAddress,
		money(o.Subtotal), money(o.TaxAmount), money(o.ShippingCost), money(o.TotalAmount), int(o.Status),
		o.PaymentMethod, o.PaymentReference, o.TrackingNumber, o.Notes,
		formatNullableTime(o.ShippedDate), formatNullableTime(o.DeliveredDate),
		formatTime(o.CreatedAt), formatTime(o.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert order %q: %w", o.ID, err)
	}

	const qi = `
		INSERT INTO order_items
			(order_id, position, product_id, product_name, sku, quantity, unit_price, line_total, image_url)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, it := range o.Items {
		_, err := tx.ExecContext(ctx, qi,
			o.ID, i, it.ProductID, it.ProductName, it.SKU, it.Quantity,
			money(it.UnitPrice), money(it.LineTotal), it.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("sqlite: insert item %d of %q: %w", i, o.ID, err)
		}
	}
	return nil
}

// updateOrder writes the fields the lifecycle may change. Identity, customer
// details, items and totals are immutable and never rewritten.
func updateOrder(ctx context.Context, tx *sql.Tx, o *domain.Order) error {
	const q = `
		UPDATE orders
		SET    status = ?, tracking_number = ?, notes = ?,
		       shipped_date = ?, delivered_date = ?, updated_at = ?
		WHERE  id = ?`

	res, err := tx.ExecContext(ctx, q,
		int(o.Status), o.TrackingNumber, o.Notes,
		formatNullableTime(o.ShippedDate), formatNullableTime(o.DeliveredDate), formatTime(o.UpdatedAt),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update order %q: %w", o.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrOrderNotFound
	}
	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, e *history.Entry) error {
	const q = `
		INSERT INTO order_history
			(event_id, order_id, action, from_status, to_status, subject_id, payload,
			 trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := tx.ExecContext(ctx, q,
		e.EventID, e.OrderID, string(e.Action), e.FromStatus, e.ToStatus, e.SubjectID, e.Payload,
		e.TraceID, e.SpanID, formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save history for %q: %w", e.OrderID, err)
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return nil
}

// inTx runs fn in a transaction, committing on success and rolling back on
// any error. Domain errors returned by fn pass through unwrapped.
func (r *Repository) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin %s: %w", op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit %s: %w", op, err)
	}
	return nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
