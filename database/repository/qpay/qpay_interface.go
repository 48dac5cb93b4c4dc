package qpayRepo

import (
	"errors"

	"qserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrInsufficientFunds is returned when a debit would take the balance
// below zero.
var ErrInsufficientFunds = errors.New("insufficient qpay balance")

// QPayRepository defines methods for QPay account data access.
type QPayRepository interface {
	// Create inserts a new QPay account.
	Create(acct *models.QPayAccount) error
	// GetByOwner retrieves the account of a user. Returns (nil, nil) when absent.
	GetByOwner(ownerID string) (*models.QPayAccount, error)
	// Credit atomically adds amount to the owner's balance.
	Credit(ownerID string, amount float64) error
	// Debit atomically subtracts amount, failing with ErrInsufficientFunds
	// when the balance would go negative.
	Debit(ownerID string, amount float64) error
	// Update applies a $set document to the owner's account.
	Update(ownerID string, updateDoc bson.M) error
}
