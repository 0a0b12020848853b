package repository

import (
	"context"
	"database/sql"

	"github.com/petmart/petmart-api/internal/model"
)

// ContactRepo persists messages submitted through the public contact form.
// Rows are append-only: nothing in the application updates or deletes them.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo returns a ContactRepo bound to the given database.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

// Create inserts a contact message and populates the generated ID and
// DB-assigned creation time on the provided record.
func (r *ContactRepo) Create(ctx context.Context, c *model.Contact) error {
	const q = `INSERT INTO contacts (name, email, phone, subject, message) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Subject, c.Message)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx, `SELECT created_at FROM contacts WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
}

// ListAll returns every stored message, newest first, for the admin inbox.
func (r *ContactRepo) ListAll(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, created_at
		 FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
