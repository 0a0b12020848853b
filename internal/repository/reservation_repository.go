package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/petmart/petmart-api/internal/model"
)

// ReservationRepo provides persistence for reservations and their frozen
// item snapshots. Reservations group the cart lines a customer submits for
// adoption; the snapshots live in the reservation_items table and are never
// rewritten after creation. All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB for callers that need to begin
// transactions spanning the reservation and its items.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a reservation and its item snapshots within the scope of
// an existing transaction. It populates the generated ID and the DB-default
// reservation date on the provided record. The caller must commit or roll
// back the transaction.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (user_id, customer_name, customer_email, customer_phone, customer_address,
	            preferred_visit_date, message, quantity_total, amount_cents, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.UserID, res.Customer.Name, res.Customer.Email, res.Customer.Phone, res.Customer.Address,
		res.Customer.PreferredVisitDate, res.Customer.Message,
		res.QuantityTotal, res.AmountCents, string(res.Status))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)

	if len(res.Items) > 0 {
		query := `INSERT INTO reservation_items
		          (reservation_id, product_code, name, type, breed, price_cents, image_path, quantity, amount_cents) VALUES `
		args := make([]any, 0, len(res.Items)*9)
		for i, it := range res.Items {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, ?, ?)"
			args = append(args,
				res.ID, it.Product.Code, it.Product.Name, string(it.Product.Type), it.Product.Breed,
				it.Product.PriceCents, it.Product.ImagePath, it.Quantity, it.AmountCents)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	// Query back the row to populate the DB-assigned reservation date.
	const sel = `SELECT reservation_date FROM reservations WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.ReservationDate)
}

const reservationCols = `id, user_id, customer_name, customer_email, customer_phone, customer_address,
	preferred_visit_date, message, quantity_total, amount_cents, status, reservation_date`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var res model.Reservation
	if err := row.Scan(
		&res.ID, &res.UserID, &res.Customer.Name, &res.Customer.Email, &res.Customer.Phone,
		&res.Customer.Address, &res.Customer.PreferredVisitDate, &res.Customer.Message,
		&res.QuantityTotal, &res.AmountCents, &res.Status, &res.ReservationDate,
	); err != nil {
		return nil, err
	}
	res.Amount = float64(res.AmountCents) / 100.0
	res.Items = []model.ReservationItem{}
	return &res, nil
}

// loadItems populates the item snapshots for every reservation in the slice
// with a single IN(...) query, keyed back by reservation id.
func (r *ReservationRepo) loadItems(ctx context.Context, list []model.Reservation) error {
	if len(list) == 0 {
		return nil
	}
	index := make(map[uint64]int, len(list))
	ids := make([]any, 0, len(list))
	placeholders := make([]string, 0, len(list))
	for i := range list {
		index[list[i].ID] = i
		ids = append(ids, list[i].ID)
		placeholders = append(placeholders, "?")
	}
	query := `SELECT reservation_id, product_code, name, type, breed, price_cents, image_path, quantity, amount_cents
	          FROM reservation_items
	          WHERE reservation_id IN (` + strings.Join(placeholders, ",") + `)
	          ORDER BY reservation_id, id`
	rows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rid uint64
		var it model.ReservationItem
		if err := rows.Scan(
			&rid, &it.Product.Code, &it.Product.Name, &it.Product.Type, &it.Product.Breed,
			&it.Product.PriceCents, &it.Product.ImagePath, &it.Quantity, &it.AmountCents,
		); err != nil {
			return err
		}
		it.Product.Price = float64(it.Product.PriceCents) / 100.0
		it.Amount = float64(it.AmountCents) / 100.0
		idx, ok := index[rid]
		if !ok {
			continue
		}
		list[idx].Items = append(list[idx].Items, it)
	}
	return rows.Err()
}

// ListAll returns every reservation for the admin triage view: PENDING
// first, then by reservation date descending. The ordering is a usability
// policy the UI depends on, so it is fixed here rather than left to
// callers.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations
	      ORDER BY (status = 'PENDING') DESC, reservation_date DESC, id DESC`
	return r.list(ctx, q)
}

// ListByUser returns the reservations created by the given identity,
// newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations
	      WHERE user_id = ?
	      ORDER BY reservation_date DESC, id DESC`
	return r.list(ctx, q, userID)
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads one reservation with its items. Returns
// ErrReservationNotFound when the id is unknown.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationCols+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	list := []model.Reservation{*res}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// UpdateStatusIfPending moves a reservation out of PENDING. The guard in
// the WHERE clause serializes concurrent transitions on the same id at the
// database: the first writer wins and the second sees ErrInvalidTransition.
// An unknown id yields ErrReservationNotFound.
func (r *ReservationRepo) UpdateStatusIfPending(ctx context.Context, id uint64, status model.ReservationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ? AND status = 'PENDING'`,
		string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// No row changed: distinguish "missing" from "already terminal".
	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM reservations WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		return err
	}
	return ErrInvalidTransition
}

// DeleteIfPendingForUser withdraws a reservation on behalf of its owner.
// It returns ErrReservationNotFound when the id is unknown, ErrForbidden
// when the reservation belongs to a different user and ErrInvalidTransition
// when the reservation has already been accepted or rejected. The deletion
// removes the item snapshots in the same transaction.
func (r *ReservationRepo) DeleteIfPendingForUser(ctx context.Context, id, userID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var ownerID uint64
	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, status FROM reservations WHERE id = ?`, id).Scan(&ownerID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrReservationNotFound
		}
		return err
	}
	if ownerID != userID {
		err = ErrForbidden
		return err
	}
	if model.ReservationStatus(status) != model.ReservationPending {
		err = ErrInvalidTransition
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM reservation_items WHERE reservation_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
