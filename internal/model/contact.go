package model

import "time"

// Contact records an inbound contact-form message for admin review. The
// sink is append-only and independent of carts and reservations.
//
// Fields:
//
//	ID        – primary key identifier.
//	Name      – sender name.
//	Email     – sender email.
//	Phone     – sender phone.
//	Subject   – short subject line.
//	Message   – message body.
//	CreatedAt – submission timestamp.
type Contact struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
