package transaction

import (
	"qserve/models"
	"qserve/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetHistory returns the user's transactions newest-first, each annotated
// with its direction relative to the user.
func (s *DefaultTransactionService) GetHistory(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.TransactionView, error) {
	switch filter.Status {
	case "", models.TransactionPending, models.TransactionCompleted,
		models.TransactionFailed, models.TransactionCancelled:
	default:
		return nil, utils.Ef(utils.CodeValidation, "unknown status %q", filter.Status)
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := s.Repo.History(userID, filter, offset, limit)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch transaction history", err)
	}

	views := make([]models.TransactionView, 0, len(txs))
	for _, tx := range txs {
		direction := "received"
		if tx.SenderID == userID {
			direction = "sent"
		}
		views = append(views, models.TransactionView{Transaction: tx, Direction: direction})
	}
	return views, nil
}

// GetByID retrieves a transaction; only its two parties may see it.
func (s *DefaultTransactionService) GetByID(txID, callerID string) (*models.Transaction, error) {
	tx, err := s.Repo.GetByID(txID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch transaction", err)
	}
	if tx == nil {
		return nil, utils.E(utils.CodeNotFound, "transaction not found")
	}
	if tx.SenderID != callerID && tx.ReceiverID != callerID {
		return nil, utils.E(utils.CodeForbidden, "you are not a party to this transaction")
	}
	return tx, nil
}
