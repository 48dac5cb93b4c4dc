package moneyrequest

import (
	"fmt"
	"time"

	bookingRepo "qserve/database/repository/booking"
	moneyRequestRepo "qserve/database/repository/moneyrequest"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequest carries the fields a provider submits when invoicing a
// completed booking.
type CreateRequest struct {
	ProviderID  string  `json:"-"`
	BookingID   string  `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// MoneyRequestService manages provider invoices against completed bookings.
type MoneyRequestService interface {
	Create(req CreateRequest) (*models.MoneyRequest, error)
	MarkAsPaid(requestID, callerID string) (*models.MoneyRequest, error)
	Cancel(requestID, callerID string) (*models.MoneyRequest, error)
	GetByID(requestID, callerID string) (*models.MoneyRequest, error)
	ListForUser(userID string) ([]models.MoneyRequest, error)
}

// DefaultMoneyRequestService is the production implementation.
type DefaultMoneyRequestService struct {
	Repo         moneyRequestRepo.MoneyRequestRepository
	Bookings     bookingRepo.BookingRepository
	Notification notification.NotificationService
}

// Create raises an invoice against a completed booking and moves the
// booking into the request state.
func (s *DefaultMoneyRequestService) Create(req CreateRequest) (*models.MoneyRequest, error) {
	if req.BookingID == "" {
		return nil, utils.E(utils.CodeValidation, "booking id is required")
	}
	if req.Amount <= 0 {
		return nil, utils.E(utils.CodeValidation, "amount must be positive")
	}

	b, err := s.Bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch booking", err)
	}
	if b == nil {
		return nil, utils.E(utils.CodeNotFound, "booking not found")
	}
	if b.ProviderID != req.ProviderID {
		return nil, utils.E(utils.CodeForbidden, "only the booking's provider may request money")
	}
	if b.Status != models.BookingCompleted {
		return nil, utils.Ef(utils.CodeInvalidState, "booking must be completed, is %s", b.Status)
	}

	existing, err := s.Repo.GetActiveByBooking(req.BookingID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to check for existing request", err)
	}
	if existing != nil {
		return nil, utils.E(utils.CodeConflict, "a money request already exists for this booking")
	}

	mr := models.MoneyRequest{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		ProviderID:  b.ProviderID,
		CustomerID:  b.CustomerID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      models.MoneyRequestPending,
		RequestDate: time.Now(),
	}
	if err := s.Repo.Create(&mr); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to create money request", err)
	}

	if err := s.Bookings.UpdateStatus(b.ID, models.BookingRequest); err != nil {
		utils.GetLogger().Error("money request: failed to flip booking status",
			zap.String("bookingID", b.ID), zap.Error(err))
	}

	s.Notification.Notify(b.CustomerID, "Payment requested",
		fmt.Sprintf("%s requested %.2f for %q", b.ProviderID, req.Amount, b.Title),
		map[string]string{"requestId": mr.ID, "bookingId": b.ID})

	return &mr, nil
}

// MarkAsPaid settles the request. Only the booking's customer may do so.
func (s *DefaultMoneyRequestService) MarkAsPaid(requestID, callerID string) (*models.MoneyRequest, error) {
	mr, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch money request", err)
	}
	if mr == nil {
		return nil, utils.E(utils.CodeNotFound, "money request not found")
	}
	if mr.CustomerID != callerID {
		return nil, utils.E(utils.CodeForbidden, "only the booking's customer may pay this request")
	}
	if mr.Status == models.MoneyRequestPaid {
		return nil, utils.E(utils.CodeConflict, "money request is already paid")
	}
	if mr.Status == models.MoneyRequestCancelled {
		return nil, utils.E(utils.CodeInvalidState, "money request was cancelled")
	}

	now := time.Now()
	if err := s.Repo.SetStatus(requestID, models.MoneyRequestPaid, &now); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to update money request", err)
	}
	mr.Status = models.MoneyRequestPaid
	mr.PaidDate = &now

	if err := s.Bookings.UpdateStatus(mr.BookingID, models.BookingPaid); err != nil {
		utils.GetLogger().Error("money request: failed to flip booking status",
			zap.String("bookingID", mr.BookingID), zap.Error(err))
	}

	s.Notification.Notify(mr.ProviderID, "Money request paid",
		fmt.Sprintf("Request for %.2f was paid", mr.Amount),
		map[string]string{"requestId": mr.ID})

	return mr, nil
}

// Cancel withdraws the request and reverts the booking to completed. Only
// the provider may cancel, and never after payment.
func (s *DefaultMoneyRequestService) Cancel(requestID, callerID string) (*models.MoneyRequest, error) {
	mr, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch money request", err)
	}
	if mr == nil {
		return nil, utils.E(utils.CodeNotFound, "money request not found")
	}
	if mr.ProviderID != callerID {
		return nil, utils.E(utils.CodeForbidden, "only the provider may cancel this request")
	}
	if mr.Status == models.MoneyRequestPaid {
		return nil, utils.E(utils.CodeConflict, "a paid request cannot be cancelled")
	}

	if err := s.Repo.SetStatus(requestID, models.MoneyRequestCancelled, nil); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to cancel money request", err)
	}
	mr.Status = models.MoneyRequestCancelled

	// Revert is best-effort; a failure leaves the booking in request state.
	if err := s.Bookings.UpdateStatus(mr.BookingID, models.BookingCompleted); err != nil {
		utils.GetLogger().Error("money request: failed to revert booking status",
			zap.String("bookingID", mr.BookingID), zap.Error(err))
	}

	return mr, nil
}

// GetByID retrieves a request; only its two parties may see it.
func (s *DefaultMoneyRequestService) GetByID(requestID, callerID string) (*models.MoneyRequest, error) {
	mr, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch money request", err)
	}
	if mr == nil {
		return nil, utils.E(utils.CodeNotFound, "money request not found")
	}
	if mr.ProviderID != callerID && mr.CustomerID != callerID {
		return nil, utils.E(utils.CodeForbidden, "you are not a party to this request")
	}
	return mr, nil
}

// ListForUser lists requests where the user is either party.
func (s *DefaultMoneyRequestService) ListForUser(userID string) ([]models.MoneyRequest, error) {
	reqs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to list money requests", err)
	}
	return reqs, nil
}
