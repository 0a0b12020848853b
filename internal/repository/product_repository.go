package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/petmart/petmart-api/internal/model"
)

// ProductRepo manages persistence for catalog products. All timestamps are
// stored in UTC. Status and type columns hold the upper-case enum forms
// produced by the model parsers; rows never carry free-form variants.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the given DB handle.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories.
func (r *ProductRepo) DB() *sql.DB { return r.db }

const productCols = "code, name, type, breed, age, gender, description, price_cents, image_path, status, created_at"

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(
		&p.Code, &p.Name, &p.Type, &p.Breed, &p.Age, &p.Gender,
		&p.Description, &p.PriceCents, &p.ImagePath, &p.Status, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Price = float64(p.PriceCents) / 100.0
	return &p, nil
}

// ListQuery defines filters and pagination for listing products. Search
// matches name and description case-insensitively. Status narrows to a
// single lifecycle state; customer-facing views pass AVAILABLE.
type ListQuery struct {
	Search   string
	Status   model.ProductStatus
	Page     int
	PageSize int
}

// List returns one stable-ordered page of products plus the total match
// count. Ordering is newest first with the code as tie-breaker so pages
// never shuffle between requests. No match yields an empty slice, not an
// error.
func (r *ProductRepo) List(ctx context.Context, q ListQuery) ([]model.Product, int64, error) {
	where := []string{}
	args := []any{}

	if q.Search != "" {
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)")
		pat := "%" + strings.ToLower(q.Search) + "%"
		args = append(args, pat, pat)
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(q.Status))
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM products WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT ` + productCols + ` FROM products WHERE ` + cond + `
		ORDER BY created_at DESC, code ASC
		LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByCode retrieves a product by its code. It returns ErrProductNotFound
// when no matching row exists.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productCols+` FROM products WHERE code = ?`, code)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// ExistsCode reports whether a product with the given code exists. Used
// when generating fresh codes for new products.
func (r *ProductRepo) ExistsCode(ctx context.Context, code string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE code = ? LIMIT 1`, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new product and queries the row back to populate
// DB-default fields (created_at).
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const q = `INSERT INTO products (code, name, type, breed, age, gender, description, price_cents, image_path, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q,
		p.Code, p.Name, string(p.Type), p.Breed, p.Age, p.Gender,
		p.Description, p.PriceCents, p.ImagePath, string(p.Status),
	); err != nil {
		return err
	}
	const sel = `SELECT ` + productCols + ` FROM products WHERE code = ?`
	got, err := scanProduct(r.db.QueryRowContext(ctx, sel, p.Code))
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

// Update replaces the mutable attributes of a product. The code and
// created_at are immutable. It returns ErrProductNotFound when the code
// does not exist.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	const q = `UPDATE products
	           SET name = ?, type = ?, breed = ?, age = ?, gender = ?, description = ?, price_cents = ?, image_path = ?, status = ?
	           WHERE code = ?`
	res, err := r.db.ExecContext(ctx, q,
		p.Name, string(p.Type), p.Breed, p.Age, p.Gender,
		p.Description, p.PriceCents, p.ImagePath, string(p.Status), p.Code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either missing or identical values; distinguish with an existence check.
		ok, err := r.ExistsCode(ctx, p.Code)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}
	}
	const sel = `SELECT ` + productCols + ` FROM products WHERE code = ?`
	got, err := scanProduct(r.db.QueryRowContext(ctx, sel, p.Code))
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

// UpdateStatus sets only the lifecycle status of a product. Returns
// ErrProductNotFound when the code is unknown, so callers marking adopted
// products can log and continue.
func (r *ProductRepo) UpdateStatus(ctx context.Context, code string, status model.ProductStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET status = ? WHERE code = ?`, string(status), code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		ok, err := r.ExistsCode(ctx, code)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}
	}
	return nil
}

// Delete removes a product row. Reservations keep their frozen snapshots;
// cart lines referencing the code are flagged stale on the next cart read.
// Returns ErrProductNotFound when the code is unknown.
func (r *ProductRepo) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE code = ?`, code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
