package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	transactionRepo "qserve/database/repository/transaction"
	"qserve/models"
	"qserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Attempts at generating a non-colliding transaction identifier before
// giving up. The store's unique index is the actual guarantee.
const maxIDAttempts = 5

// newTransactionID builds the human-readable identifier, a date stamp plus
// a random suffix.
func newTransactionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("TXN%s%s", now.Format("20060102"), suffix)
}

// SendMoney transfers amount from sender to receiver on the QPay rail. The
// record insert, debit and credit commit as one unit; the linked booking
// and money request are flipped to paid afterwards on a best-effort basis.
func (s *DefaultTransactionService) SendMoney(ctx context.Context, req SendMoneyRequest) (*models.Transaction, error) {
	logger := utils.GetLogger()

	if req.ReceiverID == "" || req.Pin == "" {
		return nil, utils.E(utils.CodeValidation, "receiver and pin are required")
	}
	if req.Amount <= 0 {
		return nil, utils.E(utils.CodeValidation, "amount must be positive")
	}
	if req.SenderID == req.ReceiverID {
		return nil, utils.E(utils.CodeValidation, "cannot send money to yourself")
	}

	sender, err := s.QPay.GetByOwner(req.SenderID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve sender account", err)
	}
	if sender == nil {
		return nil, utils.E(utils.CodeNotFound, "sender has no qpay account")
	}
	receiver, err := s.QPay.GetByOwner(req.ReceiverID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve receiver account", err)
	}
	if receiver == nil {
		return nil, utils.E(utils.CodeNotFound, "receiver has no qpay account")
	}

	if bcrypt.CompareHashAndPassword([]byte(sender.PinHash), []byte(req.Pin)) != nil {
		return nil, utils.E(utils.CodeInvalidPin, "incorrect pin")
	}

	// Early check for a friendlier error; the transfer itself re-checks the
	// balance atomically.
	if sender.Balance < req.Amount {
		return nil, utils.E(utils.CodeInsufficientBalance, "insufficient qpay balance")
	}

	var details *models.ServiceDetails
	var requestID string
	if req.BookingID != "" {
		b, err := s.Bookings.GetByID(req.BookingID)
		if err != nil {
			return nil, utils.Wrap(utils.CodeInternal, "failed to resolve booking", err)
		}
		if b == nil {
			return nil, utils.E(utils.CodeNotFound, "booking not found")
		}
		if b.CustomerID != req.SenderID || b.ProviderID != req.ReceiverID {
			return nil, utils.E(utils.CodeForbidden, "booking does not belong to this transfer's parties")
		}

		details = &models.ServiceDetails{Title: b.Title, Date: b.Date}
		if provider, err := s.Users.GetByID(b.ProviderID); err == nil && provider != nil {
			details.Occupation = provider.Occupation
		}
		if mr, err := s.Requests.GetActiveByBooking(b.ID); err == nil && mr != nil {
			requestID = mr.ID
		}
	}

	tx := &models.Transaction{
		ID:             uuid.New().String(),
		SenderID:       req.SenderID,
		ReceiverID:     req.ReceiverID,
		Amount:         req.Amount,
		Currency:       models.DefaultTransactionCurrency,
		Description:    req.Description,
		BookingID:      req.BookingID,
		RequestID:      requestID,
		ServiceDetails: details,
	}

	for attempt := 0; ; attempt++ {
		tx.TransactionID = newTransactionID(time.Now())
		err = s.Repo.ExecuteTransfer(ctx, tx)
		if err == nil {
			break
		}
		if errors.Is(err, transactionRepo.ErrDuplicateTransactionID) && attempt < maxIDAttempts-1 {
			continue
		}
		if errors.Is(err, transactionRepo.ErrInsufficientFunds) {
			return nil, utils.E(utils.CodeInsufficientBalance, "insufficient qpay balance")
		}
		logger.Error("send money: transfer failed",
			zap.String("sender", req.SenderID), zap.String("receiver", req.ReceiverID), zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "transfer failed, please try again", err)
	}

	// Post-commit side effects are logged and swallowed; the money has
	// already moved.
	if req.BookingID != "" {
		if err := s.Bookings.UpdateStatus(req.BookingID, models.BookingPaid); err != nil {
			logger.Error("send money: failed to flip booking status",
				zap.String("bookingID", req.BookingID), zap.Error(err))
		}
		if requestID != "" {
			now := time.Now()
			if err := s.Requests.SetStatus(requestID, models.MoneyRequestPaid, &now); err != nil {
				logger.Error("send money: failed to flip money request status",
					zap.String("requestID", requestID), zap.Error(err))
			}
		}
	}

	s.Notification.Notify(req.ReceiverID, "Money received",
		fmt.Sprintf("You received %.2f %s", tx.Amount, tx.Currency),
		map[string]string{"transactionId": tx.TransactionID})

	return tx, nil
}
