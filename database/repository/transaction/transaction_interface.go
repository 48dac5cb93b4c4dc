package transactionRepo

import (
	"context"
	"errors"

	"qserve/models"
)

// ErrInsufficientFunds is returned when the sender's balance cannot cover
// the transfer amount at commit time.
var ErrInsufficientFunds = errors.New("insufficient qpay balance")

// ErrDuplicateTransactionID is returned when the generated human-readable
// transaction identifier collides; callers regenerate and retry.
var ErrDuplicateTransactionID = errors.New("duplicate transaction id")

// TransactionRepository defines methods for the transaction ledger.
type TransactionRepository interface {
	// ExecuteTransfer atomically inserts the transaction record, debits the
	// sender's QPay account and credits the receiver's, all inside one store
	// transaction. On success the record is persisted as completed; on any
	// failure nothing is written.
	ExecuteTransfer(ctx context.Context, tx *models.Transaction) error
	// GetByID retrieves a transaction by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Transaction, error)
	// History retrieves transactions where the user is sender or receiver,
	// newest-first, paginated by offset/limit.
	History(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error)
}
