package userRepo

import (
	"qserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update applies a $set document to an existing user record.
	Update(id string, updateDoc bson.M) error
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetProviders retrieves provider users, optionally filtered by occupation.
	GetProviders(occupation string) ([]models.User, error)
	// Delete removes a user record by its ID.
	Delete(id string) error
}
