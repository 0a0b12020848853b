package repository

import (
	"context"
	"database/sql"

	"github.com/petmart/petmart-api/internal/model"
)

// CartRepo persists cart lines. One row per (user, product code); the
// auto-increment id preserves insertion order for display. Each row keeps
// the snapshot of the product taken when the line was first added so that
// totals stay stable when the catalog changes underneath the cart.
type CartRepo struct {
	db *sql.DB
}

// NewCartRepo returns a CartRepo bound to the given database.
func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{db: db} }

// Load assembles the cart of a user from its rows, oldest line first. A
// LEFT JOIN against products detects lines whose product has been deleted;
// those are flagged unavailable rather than dropped, and Recompute excludes
// them from the totals. A user without rows gets an empty cart, not an
// error.
func (r *CartRepo) Load(ctx context.Context, userID uint64) (*model.Cart, error) {
	const q = `SELECT cl.product_code, cl.quantity, cl.name, cl.type, cl.breed, cl.price_cents, cl.image_path,
	                  (p.code IS NULL) AS missing
	           FROM cart_lines cl
	           LEFT JOIN products p ON p.code = cl.product_code
	           WHERE cl.user_id = ?
	           ORDER BY cl.id ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := model.NewCart()
	for rows.Next() {
		var line model.CartLine
		var missing bool
		if err := rows.Scan(
			&line.Product.Code, &line.Quantity, &line.Product.Name, &line.Product.Type,
			&line.Product.Breed, &line.Product.PriceCents, &line.Product.ImagePath, &missing,
		); err != nil {
			return nil, err
		}
		line.Unavailable = missing
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	cart.Recompute()
	return cart, nil
}

// AddLine inserts a line with the given product snapshot or, when the user
// already has a line for the code, accumulates the quantity. The insert is
// a single statement, so concurrent adds of the same code never lose an
// increment.
func (r *CartRepo) AddLine(ctx context.Context, userID uint64, info model.ProductInfo, quantity int) error {
	const q = `INSERT INTO cart_lines (user_id, product_code, quantity, name, type, breed, price_cents, image_path)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`
	_, err := r.db.ExecContext(ctx, q,
		userID, info.Code, quantity, info.Name, string(info.Type), info.Breed, info.PriceCents, info.ImagePath)
	return err
}

// SetQuantity sets the absolute quantity of a line. Setting a code the
// user has no line for is a no-op.
func (r *CartRepo) SetQuantity(ctx context.Context, userID uint64, code string, quantity int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cart_lines SET quantity = ? WHERE user_id = ? AND product_code = ?`,
		quantity, userID, code)
	return err
}

// RemoveLine deletes the line for the code. Removing an absent line is a
// no-op.
func (r *CartRepo) RemoveLine(ctx context.Context, userID uint64, code string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE user_id = ? AND product_code = ?`,
		userID, code)
	return err
}

// Clear removes every line of the user's cart. Idempotent.
func (r *CartRepo) Clear(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE user_id = ?`, userID)
	return err
}
