package transaction

import (
	"qserve/utils"
)

// Receipt renders the transaction as a downloadable PDF. Access follows the
// same party restriction as GetByID.
func (s *DefaultTransactionService) Receipt(txID, callerID string) ([]byte, error) {
	tx, err := s.GetByID(txID, callerID)
	if err != nil {
		return nil, err
	}

	senderName, receiverName := tx.SenderID, tx.ReceiverID
	if u, err := s.Users.GetByID(tx.SenderID); err == nil && u != nil {
		senderName = u.Name
	}
	if u, err := s.Users.GetByID(tx.ReceiverID); err == nil && u != nil {
		receiverName = u.Name
	}

	pdf, err := utils.RenderReceipt(tx, senderName, receiverName)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to render receipt", err)
	}
	return pdf, nil
}
