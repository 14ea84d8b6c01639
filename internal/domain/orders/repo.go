package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/inventory"
	"github.com/laarne/laundromat/internal/domain/pricing"
	"github.com/laarne/laundromat/internal/infra/db"
)

// Repo owns the order workflow. Creation deducts inventory in the
// same transaction; everything else is a single statement.
type Repo struct {
	pool   *pgxpool.Pool
	policy inventory.Policy
}

func NewRepo(pool *pgxpool.Pool, policy inventory.Policy) *Repo {
	return &Repo{pool: pool, policy: policy}
}

const orderCols = `o.id, o.customer_id, o.weight, o.service_type, o.price, o.status, o.notes,
		o.order_date, o.ready_date, o.claimed_date, o.created_at, o.updated_at`

func scanOrder(row pgx.Row, dst *Order, extra ...any) error {
	fields := []any{
		&dst.ID, &dst.CustomerID, &dst.Weight, &dst.ServiceType, &dst.Price, &dst.Status, &dst.Notes,
		&dst.OrderDate, &dst.ReadyDate, &dst.ClaimedDate, &dst.CreatedAt, &dst.UpdatedAt,
	}
	return row.Scan(append(fields, extra...)...)
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+`, c.name, c.contact
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o, &o.CustomerName, &o.CustomerContact); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := scanOrder(r.pool.QueryRow(ctx, `
		SELECT `+orderCols+`, c.name, c.contact, c.email, c.address
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1
	`, id), &o, &o.CustomerName, &o.CustomerContact, &o.CustomerEmail, &o.CustomerAddress)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) ListByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+`, c.name
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o, &o.CustomerName); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create runs the intake transaction: resolve the active rate, insert
// the order at the computed price, deduct consumables. All of it
// commits together or not at all.
func (r *Repo) Create(ctx context.Context, in CreateInput) (*Order, error) {
	if in.CustomerID <= 0 || in.Weight <= 0 || in.ServiceType == "" {
		return nil, apperr.InvalidInput("customer_id, weight, and service_type are required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	base, perKg, ok, err := pricing.ActiveRate(ctx, tx, in.ServiceType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidInput("invalid service type")
	}
	price := pricing.Price(base, perKg, in.Weight)

	var o Order
	err = scanOrder(tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, weight, service_type, price, notes)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+bareOrderCols(), in.CustomerID, in.Weight, in.ServiceType, price, in.Notes), &o)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperr.InvalidInput("customer not found")
		}
		return nil, err
	}

	if err := inventory.DeductTx(ctx, tx, r.policy, in.ServiceType, in.Weight); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update edits weight/service/notes and reprices against the current
// catalog. Inventory is not re-deducted or restored on edit.
func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (*Order, error) {
	if in.Weight <= 0 || in.ServiceType == "" {
		return nil, apperr.InvalidInput("weight and service_type are required")
	}

	base, perKg, ok, err := pricing.ActiveRate(ctx, r.pool, in.ServiceType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidInput("invalid service type")
	}
	price := pricing.Price(base, perKg, in.Weight)

	var o Order
	err = scanOrder(r.pool.QueryRow(ctx, `
		UPDATE orders
		SET weight=$2, service_type=$3, price=$4, notes=$5, updated_at=now()
		WHERE id=$1
		RETURNING `+bareOrderCols(), id, in.Weight, in.ServiceType, price, in.Notes), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus moves an order to the requested label, stamping the
// ready/claimed dates on the way through.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, apperr.InvalidInput("invalid status")
	}

	q := `UPDATE orders SET status=$2, updated_at=now()`
	switch status {
	case StatusReady:
		q += `, ready_date=now()`
	case StatusClaimed:
		q += `, claimed_date=now()`
	}
	q += ` WHERE id=$1 RETURNING ` + bareOrderCols()

	var o Order
	err := scanOrder(r.pool.QueryRow(ctx, q, id, status), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete is unconditional: no inventory restoration, no billing
// cleanup.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

// bareOrderCols is orderCols without the o. alias, for RETURNING.
func bareOrderCols() string {
	return `id, customer_id, weight, service_type, price, status, notes,
		order_date, ready_date, claimed_date, created_at, updated_at`
}
