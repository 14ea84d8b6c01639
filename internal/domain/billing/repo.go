package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/orders"
	"github.com/laarne/laundromat/internal/domain/period"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// RecordPayment bills a ready order at its stored price and flips it
// to claimed. Both writes commit together or not at all.
func (r *Repo) RecordPayment(ctx context.Context, orderID int64, paymentMethod string) (*Record, error) {
	if orderID <= 0 {
		return nil, apperr.InvalidInput("order_id is required")
	}
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var price float64
	var status orders.Status
	err = tx.QueryRow(ctx, `SELECT price, status FROM orders WHERE id = $1`, orderID).Scan(&price, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	if status != orders.StatusReady {
		return nil, apperr.InvalidInput("order must be ready before billing")
	}

	var rec Record
	err = tx.QueryRow(ctx, `
		INSERT INTO billing_history (order_id, total_amount, payment_method)
		VALUES ($1,$2,$3)
		RETURNING id, order_id, total_amount, payment_method, payment_date
	`, orderID, price, paymentMethod).Scan(&rec.ID, &rec.OrderID, &rec.TotalAmount, &rec.PaymentMethod, &rec.PaymentDate)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status=$1, claimed_date=now(), updated_at=now() WHERE id=$2
	`, orders.StatusClaimed, orderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repo) History(ctx context.Context) ([]HistoryRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bh.id, bh.order_id, bh.total_amount, bh.payment_method, bh.payment_date,
			o.weight, o.service_type, o.order_date,
			c.name, c.contact
		FROM billing_history bh
		JOIN orders o ON bh.order_id = o.id
		JOIN customers c ON o.customer_id = c.id
		ORDER BY bh.payment_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryRow{}
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.ID, &h.OrderID, &h.TotalAmount, &h.PaymentMethod, &h.PaymentDate,
			&h.Weight, &h.ServiceType, &h.OrderDate,
			&h.CustomerName, &h.CustomerContact); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) Summary(ctx context.Context, p period.Period) (*Summary, error) {
	var s Summary
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			SUM(total_amount),
			AVG(total_amount),
			MIN(payment_date),
			MAX(payment_date)
		FROM billing_history
		WHERE `+p.Clause("payment_date"),
	).Scan(&s.TotalOrders, &s.TotalRevenue, &s.AverageOrderValue, &s.PeriodStart, &s.PeriodEnd)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
