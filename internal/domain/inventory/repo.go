package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/infra/db"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const itemCols = `id, item_name, quantity, threshold, unit, cost_per_unit, created_at, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	if err := row.Scan(&it.ID, &it.ItemName, &it.Quantity, &it.Threshold, &it.Unit, &it.CostPerUnit, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]Item, error) {
	defer rows.Close()
	out := []Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemCols+`
		FROM inventory
		ORDER BY item_name
	`)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Item, error) {
	it, err := scanItem(r.pool.QueryRow(ctx, `
		SELECT `+itemCols+`
		FROM inventory WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("inventory item not found")
	}
	return it, err
}

func (r *Repo) Create(ctx context.Context, in Input) (*Item, error) {
	unit := in.Unit
	if unit == "" {
		unit = "units"
	}
	var cost float64
	if in.CostPerUnit != nil {
		cost = *in.CostPerUnit
	}
	it, err := scanItem(r.pool.QueryRow(ctx, `
		INSERT INTO inventory (item_name, quantity, threshold, unit, cost_per_unit)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+itemCols+`
	`, in.ItemName, *in.Quantity, *in.Threshold, unit, cost))
	if err != nil && db.IsUniqueViolation(err) {
		return nil, apperr.Conflict("item with this name already exists")
	}
	return it, err
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (*Item, error) {
	unit := in.Unit
	if unit == "" {
		unit = "units"
	}
	var cost float64
	if in.CostPerUnit != nil {
		cost = *in.CostPerUnit
	}
	it, err := scanItem(r.pool.QueryRow(ctx, `
		UPDATE inventory
		SET item_name=$2, quantity=$3, threshold=$4, unit=$5, cost_per_unit=$6, updated_at=now()
		WHERE id=$1
		RETURNING `+itemCols+`
	`, id, in.ItemName, *in.Quantity, *in.Threshold, unit, cost))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("inventory item not found")
	}
	if err != nil && db.IsUniqueViolation(err) {
		return nil, apperr.Conflict("item with this name already exists")
	}
	return it, err
}

// AddStock applies a relative increment. qty must be > 0; the absolute
// value is set through Update instead.
func (r *Repo) AddStock(ctx context.Context, id int64, qty float64) (*Item, error) {
	if qty <= 0 {
		return nil, apperr.InvalidInput("quantity must be > 0")
	}
	it, err := scanItem(r.pool.QueryRow(ctx, `
		UPDATE inventory
		SET quantity = quantity + $2, updated_at=now()
		WHERE id=$1
		RETURNING `+itemCols+`
	`, id, qty))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("inventory item not found")
	}
	return it, err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("inventory item not found")
	}
	return nil
}

// ListLowStock returns items at or below their threshold, most
// deficient first.
func (r *Repo) ListLowStock(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemCols+`
		FROM inventory
		WHERE quantity <= threshold
		ORDER BY (quantity - threshold) ASC
	`)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// DeductTx runs the consumption deduction for one order inside the
// caller's transaction. Items missing from the ledger are skipped
// silently; quantities may go negative.
func DeductTx(ctx context.Context, tx pgx.Tx, policy Policy, serviceType string, weight float64) error {
	for name, qty := range policy.Usage(serviceType, weight) {
		if _, err := tx.Exec(ctx, `
			UPDATE inventory
			SET quantity = quantity - $1, updated_at=now()
			WHERE item_name = $2
		`, qty, name); err != nil {
			return err
		}
	}
	return nil
}
