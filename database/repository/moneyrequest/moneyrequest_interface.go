package moneyRequestRepo

import (
	"time"

	"qserve/models"
)

// MoneyRequestRepository defines methods for money request data access.
type MoneyRequestRepository interface {
	// Create inserts a new money request.
	Create(req *models.MoneyRequest) error
	// GetByID retrieves a request by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.MoneyRequest, error)
	// GetActiveByBooking retrieves the outstanding (pending or paid) request
	// for a booking, if any. Returns (nil, nil) when absent.
	GetActiveByBooking(bookingID string) (*models.MoneyRequest, error)
	// SetStatus updates the request status, recording paidDate when paid.
	SetStatus(id, status string, paidDate *time.Time) error
	// ListByUser retrieves requests where the user is provider or customer,
	// newest-first.
	ListByUser(userID string) ([]models.MoneyRequest, error)
}
