package model

import (
	"fmt"
	"strings"
	"time"
)

// ReservationStatus enumerates the lifecycle of an adoption request.
// PENDING is the only non-terminal state: once a reservation is ACCEPTED
// or REJECTED it can never transition again.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "PENDING"
	ReservationAccepted ReservationStatus = "ACCEPTED"
	ReservationRejected ReservationStatus = "REJECTED"
)

// ParseReservationStatus normalizes a free-form status string, rejecting
// values outside the enumeration.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ReservationPending:
		return ReservationPending, nil
	case ReservationAccepted:
		return ReservationAccepted, nil
	case ReservationRejected:
		return ReservationRejected, nil
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationAccepted || s == ReservationRejected
}

// CanTransitionTo reports whether moving from s to target is legal. Only
// PENDING may move, and only to a terminal state.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	return s == ReservationPending && target.IsTerminal()
}

// ReservationItem is one frozen cart line inside a reservation: the product
// snapshot at reservation time plus the quantity and computed amount.
type ReservationItem struct {
	Product     ProductInfo `json:"product_info"`
	Quantity    int         `json:"quantity"`
	AmountCents int64       `json:"amount_cents"`
	Amount      float64     `json:"amount"`
}

// Reservation is a customer's adoption request built from a cart snapshot,
// pending admin approval.
//
// Fields:
//
//	ID                 – server-assigned identifier.
//	UserID             – account that submitted the request.
//	Customer           – contact details captured at submission.
//	Items              – frozen cart lines, in cart insertion order.
//	QuantityTotal      – sum of item quantities.
//	AmountCents/Amount – total adoption fee across items.
//	ReservationDate    – set at creation, immutable.
//	Status             – PENDING until an admin accepts or rejects.
type Reservation struct {
	ID              uint64            `json:"id"`
	UserID          uint64            `json:"user_id"`
	Customer        CustomerInfo      `json:"customer_info"`
	Items           []ReservationItem `json:"reserved_items_details"`
	QuantityTotal   int               `json:"quantity_total"`
	AmountCents     int64             `json:"amount_cents"`
	Amount          float64           `json:"amount_total"`
	ReservationDate time.Time         `json:"reservation_date"`
	Status          ReservationStatus `json:"status"`
}

// ItemsFromCart freezes the effective lines of a cart into reservation
// items. Unavailable lines are skipped: a deleted product cannot be
// adopted. The cart's insertion order is preserved.
func ItemsFromCart(c *Cart) []ReservationItem {
	items := make([]ReservationItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.Unavailable {
			continue
		}
		items = append(items, ReservationItem{
			Product:     l.Product,
			Quantity:    l.Quantity,
			AmountCents: int64(l.Quantity) * l.Product.PriceCents,
			Amount:      float64(int64(l.Quantity)*l.Product.PriceCents) / 100.0,
		})
	}
	return items
}
