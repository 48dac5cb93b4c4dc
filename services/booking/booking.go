package booking

import (
	"time"

	bookingRepo "qserve/database/repository/booking"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/google/uuid"
)

// CreateBookingRequest carries the fields a customer submits.
type CreateBookingRequest struct {
	CustomerID  string `json:"-"`
	ProviderID  string `json:"provider_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // RFC 3339
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	Create(req CreateBookingRequest) (*models.Booking, error)
	UpdateStatus(bookingID, callerID, status string) (*models.Booking, error)
	GetByID(bookingID, callerID string) (*models.Booking, error)
	ListForCustomer(customerID string) ([]models.Booking, error)
	ListForProvider(providerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Users        userRepo.UserRepository
	Notification notification.NotificationService
}

// providerTransitions are the status moves the assigned provider may make,
// keyed by target status. The request/paid tail of the lifecycle is driven
// by the payment flow, not by this method.
var providerTransitions = map[string][]string{
	models.BookingConfirmed: {models.BookingPending},
	models.BookingCompleted: {models.BookingConfirmed},
	models.BookingCancelled: {models.BookingPending, models.BookingConfirmed},
}

// Create records a new booking in the pending state.
func (s *DefaultBookingService) Create(req CreateBookingRequest) (*models.Booking, error) {
	if req.ProviderID == "" || req.Title == "" || req.Description == "" || req.Date == "" {
		return nil, utils.E(utils.CodeValidation, "provider, title, description and date are required")
	}
	if req.CustomerID == req.ProviderID {
		return nil, utils.E(utils.CodeForbidden, "you cannot book yourself")
	}

	provider, err := s.Users.GetByID(req.ProviderID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve provider", err)
	}
	if provider == nil || !provider.IsProvider() {
		return nil, utils.E(utils.CodeNotFound, "provider not found")
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, utils.E(utils.CodeValidation, "invalid booking date")
	}
	if date.Before(time.Now()) {
		return nil, utils.E(utils.CodeValidation, "booking date must not be in the past")
	}

	b := models.Booking{
		ID:          uuid.New().String(),
		CustomerID:  req.CustomerID,
		ProviderID:  req.ProviderID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Status:      models.BookingPending,
		Charge:      provider.Charge,
	}
	if err := s.Repo.Create(&b); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to create booking", err)
	}

	s.Notification.Notify(req.ProviderID, "New booking request", b.Title,
		map[string]string{"bookingId": b.ID})

	return &b, nil
}

// UpdateStatus moves a booking through the provider-driven part of its
// lifecycle. Only the assigned provider may call it.
func (s *DefaultBookingService) UpdateStatus(bookingID, callerID, status string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch booking", err)
	}
	if b == nil {
		return nil, utils.E(utils.CodeNotFound, "booking not found")
	}
	if b.ProviderID != callerID {
		return nil, utils.E(utils.CodeForbidden, "only the assigned provider may update this booking")
	}

	from, ok := providerTransitions[status]
	if !ok {
		return nil, utils.Ef(utils.CodeValidation, "unknown status %q", status)
	}
	allowed := false
	for _, f := range from {
		if b.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, utils.Ef(utils.CodeInvalidState, "cannot move booking from %s to %s", b.Status, status)
	}

	if err := s.Repo.UpdateStatus(bookingID, status); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to update booking status", err)
	}
	b.Status = status

	s.Notification.Notify(b.CustomerID, "Booking "+status, b.Title,
		map[string]string{"bookingId": b.ID, "status": status})

	return b, nil
}

// GetByID retrieves a booking; only its two parties may see it.
func (s *DefaultBookingService) GetByID(bookingID, callerID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch booking", err)
	}
	if b == nil {
		return nil, utils.E(utils.CodeNotFound, "booking not found")
	}
	if b.CustomerID != callerID && b.ProviderID != callerID {
		return nil, utils.E(utils.CodeForbidden, "you are not a party to this booking")
	}
	return b, nil
}

// ListForCustomer lists a customer's bookings.
func (s *DefaultBookingService) ListForCustomer(customerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to list bookings", err)
	}
	return bookings, nil
}

// ListForProvider lists a provider's bookings.
func (s *DefaultBookingService) ListForProvider(providerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to list bookings", err)
	}
	return bookings, nil
}
