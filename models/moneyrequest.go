package models

import "time"

// Money request status values.
const (
	MoneyRequestPending   = "pending"
	MoneyRequestPaid      = "paid"
	MoneyRequestCancelled = "cancelled"
)

// MoneyRequest is a provider-issued invoice against a completed booking.
// Only one outstanding request may exist per booking.
type MoneyRequest struct {
	ID          string     `bson:"id" json:"id"`
	BookingID   string     `bson:"booking_id" json:"booking_id"`
	ProviderID  string     `bson:"provider_id" json:"provider_id"`
	CustomerID  string     `bson:"customer_id" json:"customer_id"`
	Amount      float64    `bson:"amount" json:"amount"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Status      string     `bson:"status" json:"status"`
	RequestDate time.Time  `bson:"request_date" json:"request_date"`
	PaidDate    *time.Time `bson:"paid_date,omitempty" json:"paid_date,omitempty"`
}
