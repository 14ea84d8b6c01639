// Package reports holds the read-only rollups over orders, billing,
// and inventory. Every query is an independent point-in-time read;
// nothing here mutates state.
package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Sales(ctx context.Context, f SalesFilter) (*Sales, error) {
	filter := f.Period.Clause("o.order_date")
	args := []any{}
	if f.StartDate != "" && f.EndDate != "" {
		filter = "DATE(o.order_date) BETWEEN $1 AND $2"
		args = []any{f.StartDate, f.EndDate}
	}

	var s Sales
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			SUM(o.price),
			AVG(o.price),
			COUNT(CASE WHEN o.status = 'claimed' THEN 1 END),
			COUNT(CASE WHEN o.status = 'ready' THEN 1 END),
			COUNT(CASE WHEN o.status = 'washing' THEN 1 END),
			COUNT(CASE WHEN o.status = 'received' THEN 1 END)
		FROM orders o
		WHERE `+filter, args...,
	).Scan(&s.TotalOrders, &s.TotalRevenue, &s.AverageOrderValue,
		&s.CompletedOrders, &s.ReadyOrders, &s.ProcessingOrders, &s.PendingOrders)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Daily breaks revenue down per day over the trailing days window.
// days is validated by the caller; it is interpolated as an integer,
// never as raw input.
func (r *Repo) Daily(ctx context.Context, days int) ([]DailyRow, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT DATE(o.order_date),
			COUNT(*),
			SUM(o.price),
			AVG(o.price)
		FROM orders o
		WHERE o.order_date >= CURRENT_DATE - INTERVAL '%d days'
		GROUP BY DATE(o.order_date)
		ORDER BY DATE(o.order_date) DESC
	`, days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DailyRow{}
	for rows.Next() {
		var d DailyRow
		if err := rows.Scan(&d.Date, &d.OrderCount, &d.DailyRevenue, &d.AvgOrderValue); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) ServiceTypes(ctx context.Context, f SalesFilter) ([]ServiceTypeRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.service_type,
			COUNT(*),
			SUM(o.price),
			AVG(o.price),
			SUM(o.weight)
		FROM orders o
		WHERE `+f.Period.Clause("o.order_date")+`
		GROUP BY o.service_type
		ORDER BY SUM(o.price) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ServiceTypeRow{}
	for rows.Next() {
		var s ServiceTypeRow
		if err := rows.Scan(&s.ServiceType, &s.OrderCount, &s.TotalRevenue, &s.AvgOrderValue, &s.TotalWeight); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Customers ranks spend inside the window, top 20, customers with no
// orders in the window excluded.
func (r *Repo) Customers(ctx context.Context, f SalesFilter) ([]CustomerRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.contact,
			COUNT(o.id),
			SUM(o.price),
			AVG(o.price),
			MAX(o.order_date)
		FROM customers c
		LEFT JOIN orders o ON c.id = o.customer_id AND `+f.Period.Clause("o.order_date")+`
		GROUP BY c.id, c.name, c.contact
		HAVING COUNT(o.id) > 0
		ORDER BY SUM(o.price) DESC
		LIMIT 20
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerRow{}
	for rows.Next() {
		var c CustomerRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.TotalOrders, &c.TotalSpent, &c.AvgOrderValue, &c.LastOrderDate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Inventory is a stock snapshot; it ignores the time window.
func (r *Repo) Inventory(ctx context.Context) ([]InventoryRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.item_name,
			i.quantity,
			i.threshold,
			CASE WHEN i.quantity <= i.threshold THEN 'Low Stock' ELSE 'In Stock' END
		FROM inventory i
		ORDER BY i.quantity ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []InventoryRow{}
	for rows.Next() {
		var iv InventoryRow
		if err := rows.Scan(&iv.ItemName, &iv.CurrentStock, &iv.Threshold, &iv.StockStatus); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// OrderStatus counts orders per workflow label, in workflow order.
func (r *Repo) OrderStatus(ctx context.Context) ([]StatusRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*), SUM(price)
		FROM orders
		GROUP BY status
		ORDER BY CASE status
			WHEN 'received' THEN 1
			WHEN 'washing' THEN 2
			WHEN 'ready' THEN 3
			WHEN 'claimed' THEN 4
		END
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusRow{}
	for rows.Next() {
		var s StatusRow
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalValue); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
