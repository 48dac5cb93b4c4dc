package bookingRepo

import "qserve/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// UpdateStatus sets the booking status.
	UpdateStatus(id, status string) error
	// ListByCustomer retrieves a customer's bookings, newest-first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByProvider retrieves a provider's bookings, newest-first.
	ListByProvider(providerID string) ([]models.Booking, error)
}
