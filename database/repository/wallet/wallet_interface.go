package walletRepo

import (
	"errors"

	"qserve/models"
)

// ErrInsufficientFunds is returned when a debit would take the balance
// below zero.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// WalletRepository defines methods for wallet account data access.
type WalletRepository interface {
	// Create inserts a new wallet account.
	Create(acct *models.WalletAccount) error
	// GetByOwner retrieves the account of a user. Returns (nil, nil) when absent.
	GetByOwner(ownerID string) (*models.WalletAccount, error)
	// Credit atomically adds amount to the owner's balance.
	Credit(ownerID string, amount float64) error
	// Debit atomically subtracts amount, failing with ErrInsufficientFunds
	// when the balance would go negative.
	Debit(ownerID string, amount float64) error
}
