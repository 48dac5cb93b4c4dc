package transaction

import (
	"context"

	bookingRepo "qserve/database/repository/booking"
	moneyRequestRepo "qserve/database/repository/moneyrequest"
	qpayRepo "qserve/database/repository/qpay"
	transactionRepo "qserve/database/repository/transaction"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/services/notification"
)

// SendMoneyRequest carries the fields of a QPay transfer.
type SendMoneyRequest struct {
	SenderID    string  `json:"-"`
	ReceiverID  string  `json:"receiver_id"`
	Amount      float64 `json:"amount"`
	Pin         string  `json:"pin"`
	Description string  `json:"description,omitempty"`
	BookingID   string  `json:"booking_id,omitempty"`
}

// TransactionService moves money between QPay accounts and serves the
// transaction history.
type TransactionService interface {
	SendMoney(ctx context.Context, req SendMoneyRequest) (*models.Transaction, error)
	GetHistory(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.TransactionView, error)
	GetByID(txID, callerID string) (*models.Transaction, error)
	Receipt(txID, callerID string) ([]byte, error)
}

// DefaultTransactionService is the production implementation.
type DefaultTransactionService struct {
	Repo         transactionRepo.TransactionRepository
	QPay         qpayRepo.QPayRepository
	Bookings     bookingRepo.BookingRepository
	Requests     moneyRequestRepo.MoneyRequestRepository
	Users        userRepo.UserRepository
	Notification notification.NotificationService
}
