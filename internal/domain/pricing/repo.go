package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laarne/laundromat/internal/apperr"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) ListActive(ctx context.Context) ([]Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, service_type, base_price, price_per_kg, is_active, updated_at
		FROM pricing
		WHERE is_active = TRUE
		ORDER BY service_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Rule{}
	for rows.Next() {
		var p Rule
		if err := rows.Scan(&p.ID, &p.ServiceType, &p.BasePrice, &p.PricePerKg, &p.IsActive, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id int64, basePrice, perKg float64) (*Rule, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE pricing
		SET base_price=$2, price_per_kg=$3, updated_at=now()
		WHERE id=$1
		RETURNING id, service_type, base_price, price_per_kg, is_active, updated_at
	`, id, basePrice, perKg)

	var p Rule
	if err := row.Scan(&p.ID, &p.ServiceType, &p.BasePrice, &p.PricePerKg, &p.IsActive, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("pricing not found")
		}
		return nil, err
	}
	return &p, nil
}

// Price is the order price under a rule: base plus weight at the
// per-kg rate.
func Price(base, perKg, weight float64) float64 {
	return base + weight*perKg
}

// ActiveRate returns the active rule for a service type. When more
// than one active rule exists the oldest wins (ORDER BY id keeps the
// lookup deterministic); ok=false means the service type is unknown.
func ActiveRate(ctx context.Context, q querier, serviceType string) (base, perKg float64, ok bool, err error) {
	row := q.QueryRow(ctx, `
		SELECT base_price, price_per_kg
		FROM pricing
		WHERE service_type = $1 AND is_active = TRUE
		ORDER BY id
		LIMIT 1
	`, serviceType)
	if err := row.Scan(&base, &perKg); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}
	return base, perKg, true, nil
}

// querier is the subset of pgx used by ActiveRate, so the lookup works
// both on the pool and inside the order-creation transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
