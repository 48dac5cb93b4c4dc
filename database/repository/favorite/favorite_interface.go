package favoriteRepo

import (
	"errors"

	"qserve/models"
)

// ErrDuplicate is returned when the (user, provider) pair already exists.
var ErrDuplicate = errors.New("provider already favorited")

// FavoriteRepository defines methods for favorite bookmark data access.
type FavoriteRepository interface {
	// Create inserts a new favorite, failing with ErrDuplicate on a repeat.
	Create(fav *models.Favorite) error
	// Delete removes the (user, provider) favorite. Returns the number of
	// documents removed.
	Delete(userID, providerID string) (int64, error)
	// Exists reports whether the user has favorited the provider.
	Exists(userID, providerID string) (bool, error)
	// ListByUser retrieves a user's favorites, newest-first.
	ListByUser(userID string) ([]models.Favorite, error)
}
