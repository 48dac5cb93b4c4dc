package favorite

import (
	"errors"

	favoriteRepo "qserve/database/repository/favorite"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/utils"

	"github.com/google/uuid"
)

// FavoriteService manages provider bookmarks.
type FavoriteService interface {
	Add(userID, providerID string) (*models.Favorite, error)
	Remove(userID, providerID string) error
	Check(userID, providerID string) (bool, error)
	List(userID string) ([]models.Favorite, error)
}

// DefaultFavoriteService is the production implementation.
type DefaultFavoriteService struct {
	Repo  favoriteRepo.FavoriteRepository
	Users userRepo.UserRepository
}

// Add bookmarks a provider for the user.
func (s *DefaultFavoriteService) Add(userID, providerID string) (*models.Favorite, error) {
	if userID == providerID {
		return nil, utils.E(utils.CodeForbidden, "you cannot favorite yourself")
	}

	provider, err := s.Users.GetByID(providerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve provider", err)
	}
	if provider == nil || !provider.IsProvider() {
		return nil, utils.E(utils.CodeNotFound, "provider not found")
	}

	fav := models.Favorite{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProviderID: providerID,
	}
	if err := s.Repo.Create(&fav); err != nil {
		if errors.Is(err, favoriteRepo.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, "provider already favorited")
		}
		return nil, utils.Wrap(utils.CodeInternal, "failed to add favorite", err)
	}
	return &fav, nil
}

// Remove deletes the bookmark.
func (s *DefaultFavoriteService) Remove(userID, providerID string) error {
	removed, err := s.Repo.Delete(userID, providerID)
	if err != nil {
		return utils.Wrap(utils.CodeInternal, "failed to remove favorite", err)
	}
	if removed == 0 {
		return utils.E(utils.CodeNotFound, "favorite not found")
	}
	return nil
}

// Check reports whether the user has favorited the provider.
func (s *DefaultFavoriteService) Check(userID, providerID string) (bool, error) {
	ok, err := s.Repo.Exists(userID, providerID)
	if err != nil {
		return false, utils.Wrap(utils.CodeInternal, "failed to check favorite", err)
	}
	return ok, nil
}

// List retrieves the user's bookmarks.
func (s *DefaultFavoriteService) List(userID string) ([]models.Favorite, error) {
	favs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to list favorites", err)
	}
	return favs, nil
}
