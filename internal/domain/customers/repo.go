package customers

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

const customerCols = `id, name, contact, email, address, created_at, updated_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Contact, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerCols+`
		FROM customers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, `
		SELECT `+customerCols+`
		FROM customers WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("customer not found")
	}
	return c, err
}

func (r *Repo) Create(ctx context.Context, in Input) (*Customer, error) {
	return scanCustomer(r.pool.QueryRow(ctx, `
		INSERT INTO customers (name, contact, email, address)
		VALUES ($1,$2,$3,$4)
		RETURNING `+customerCols+`
	`, in.Name, in.Contact, in.Email, in.Address))
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (*Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, `
		UPDATE customers
		SET name=$2, contact=$3, email=$4, address=$5, updated_at=now()
		WHERE id=$1
		RETURNING `+customerCols+`
	`, id, in.Name, in.Contact, in.Email, in.Address))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("customer not found")
	}
	return c, err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return apperr.Conflict("customer has orders")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("customer not found")
	}
	return nil
}
