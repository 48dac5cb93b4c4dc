package models

import "time"

// Transaction status values. The transfer commits records as completed only;
// the remaining values are accepted in history filters for compatibility
// with records written by earlier ledger versions.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionCancelled = "cancelled"
)

// DefaultTransactionCurrency is the implicit currency of QPay transfers.
const DefaultTransactionCurrency = "BDT"

// ServiceDetails is a snapshot of the booked service taken at transfer time,
// so receipts stay stable even if the booking is later mutated.
type ServiceDetails struct {
	Title      string    `bson:"title,omitempty" json:"title,omitempty"`
	Occupation string    `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Date       time.Time `bson:"date,omitempty" json:"date,omitempty"`
}

// Transaction is an append-only record of a money movement between two
// parties on the QPay rail.
type Transaction struct {
	ID             string          `bson:"id" json:"id"`
	TransactionID  string          `bson:"transaction_id" json:"transaction_id"`
	SenderID       string          `bson:"sender_id" json:"sender_id"`
	ReceiverID     string          `bson:"receiver_id" json:"receiver_id"`
	Amount         float64         `bson:"amount" json:"amount"`
	Currency       string          `bson:"currency" json:"currency"`
	Status         string          `bson:"status" json:"status"`
	Description    string          `bson:"description,omitempty" json:"description,omitempty"`
	BookingID      string          `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	RequestID      string          `bson:"request_id,omitempty" json:"request_id,omitempty"`
	ServiceDetails *ServiceDetails `bson:"service_details,omitempty" json:"service_details,omitempty"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	CompletedAt    *time.Time      `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// TransactionView is a Transaction annotated with the direction relative to
// the user who asked for it.
type TransactionView struct {
	Transaction `bson:",inline"`
	Direction   string `bson:"-" json:"direction"` // "sent" or "received"
}

// TransactionFilter narrows history queries.
type TransactionFilter struct {
	Status    string
	Direction string // "sent", "received" or "" for both
}
