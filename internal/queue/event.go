// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationItemSummary is the broker-facing projection of one reserved pet.
type ReservationItemSummary struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
}

// ReservationCreatedEvent is published when a customer submits a reservation.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID    uint64                   `json:"reservation_id"`
	UserID           uint64                   `json:"user_id"`
	CustomerName     string                   `json:"customer_name"`
	CustomerEmail    string                   `json:"customer_email"`
	VisitDate        string                   `json:"visit_date"`
	Items            []ReservationItemSummary `json:"items"`
	QuantityTotal    int                      `json:"quantity_total"`
	TotalAmountCents int64                    `json:"total_amount_cents"`
	CreatedAt        string                   `json:"created_at"`
}
