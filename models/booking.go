package models

import "time"

// Booking status values. The payment flow drives the request/paid tail of
// the lifecycle; the provider drives the rest.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingRequest   = "request"
	BookingPaid      = "paid"
)

// Booking records a service engagement between a customer and a provider.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Status      string    `bson:"status" json:"status"`
	Charge      float64   `bson:"charge" json:"charge"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
