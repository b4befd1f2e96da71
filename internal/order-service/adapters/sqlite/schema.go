package sqlite

// schema is the DDL executed once on startup. Money columns are TEXT holding
// fixed two-place decimals so no value ever passes through a float.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id                  TEXT    PRIMARY KEY,
    owner_id            TEXT    NOT NULL,
    customer_name       TEXT    NOT NULL,
    customer_email      TEXT    NOT NULL,
    shipping_address    TEXT    NOT NULL,
    billing_address     TEXT    NOT NULL DEFAULT '',
    subtotal            TEXT    NOT NULL,
    tax_amount          TEXT    NOT NULL,
    shipping_cost       TEXT    NOT NULL,
    total_amount        TEXT    NOT NULL,

    -- Numeric value of domain.OrderStatus.
    status              INTEGER NOT NULL,

    payment_method      TEXT    NOT NULL,
    payment_reference   TEXT    NOT NULL DEFAULT '',
    tracking_number     TEXT    NOT NULL DEFAULT '',
    notes               TEXT    NOT NULL DEFAULT '',
    shipped_date        TEXT,
    delivered_date      TEXT,
    created_at          TEXT    NOT NULL,
    updated_at          TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_owner ON orders(owner_id, created_at);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id        TEXT    NOT NULL REFERENCES orders(id),

    -- Position of the line in the original request.
    position        INTEGER NOT NULL,

    product_id      INTEGER NOT NULL,
    product_name    TEXT    NOT NULL,
    sku             TEXT    NOT NULL DEFAULT '',
    quantity        INTEGER NOT NULL CHECK (quantity >= 1),
    unit_price      TEXT    NOT NULL,
    line_total      TEXT    NOT NULL,
    image_url       TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position);

-- Append-only history, doubling as the transactional outbox.
CREATE TABLE IF NOT EXISTS order_history (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id        TEXT    NOT NULL UNIQUE,
    order_id        TEXT    NOT NULL REFERENCES orders(id),
    action          TEXT    NOT NULL,
    from_status     TEXT    NOT NULL DEFAULT '',
    to_status       TEXT    NOT NULL,
    subject_id      TEXT    NOT NULL DEFAULT '',
    payload         TEXT    NOT NULL,

    -- W3C trace_id / span_id from the active OTel span.
    trace_id        TEXT    NOT NULL DEFAULT '',
    span_id         TEXT    NOT NULL DEFAULT '',

    created_at      TEXT    NOT NULL,

    -- Outbox bookkeeping. NULL published_at means not yet delivered.
    published_at    TEXT,
    attempts        INTEGER NOT NULL DEFAULT 0,
    last_error      TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_order_history_order ON order_history(order_id, id);
CREATE INDEX IF NOT EXISTS idx_order_history_pending ON order_history(published_at, id);
CREATE INDEX IF NOT EXISTS idx_order_history_trace ON order_history(trace_id);
`
