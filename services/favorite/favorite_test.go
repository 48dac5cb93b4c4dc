package favorite

import (
	"testing"

	favoriteRepo "qserve/database/repository/favorite"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type mockFavoriteRepo struct {
	createFn func(fav *models.Favorite) error
	deleteFn func(userID, providerID string) (int64, error)
	existsFn func(userID, providerID string) (bool, error)
	listFn   func(userID string) ([]models.Favorite, error)
}

var _ favoriteRepo.FavoriteRepository = (*mockFavoriteRepo)(nil)

func (m *mockFavoriteRepo) Create(fav *models.Favorite) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(fav)
}

func (m *mockFavoriteRepo) Delete(userID, providerID string) (int64, error) {
	if m.deleteFn == nil {
		return 1, nil
	}
	return m.deleteFn(userID, providerID)
}

func (m *mockFavoriteRepo) Exists(userID, providerID string) (bool, error) {
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(userID, providerID)
}

func (m *mockFavoriteRepo) ListByUser(userID string) ([]models.Favorite, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(userID)
}

type mockUserRepo struct {
	getByIDFn func(id string) (*models.User, error)
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(u *models.User) error                   { return nil }
func (m *mockUserRepo) Update(id string, updateDoc bson.M) error      { return nil }
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *mockUserRepo) GetProviders(occupation string) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Delete(id string) error { return nil }

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.getByIDFn == nil {
		return &models.User{ID: id, Role: models.RoleProvider}, nil
	}
	return m.getByIDFn(id)
}

func newService(repo *mockFavoriteRepo) *DefaultFavoriteService {
	return &DefaultFavoriteService{Repo: repo, Users: &mockUserRepo{}}
}

// --- tests ---

func TestAdd_SelfFavoriteForbidden(t *testing.T) {
	svc := newService(&mockFavoriteRepo{})

	_, err := svc.Add("u1", "u1")
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}

func TestAdd_ProviderMustExist(t *testing.T) {
	svc := newService(&mockFavoriteRepo{})
	svc.Users = &mockUserRepo{getByIDFn: func(id string) (*models.User, error) {
		return &models.User{ID: id, Role: models.RoleCustomer}, nil
	}}

	_, err := svc.Add("u1", "not-a-provider")
	require.Error(t, err)
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestAdd_DuplicateIsConflict(t *testing.T) {
	svc := newService(&mockFavoriteRepo{createFn: func(fav *models.Favorite) error {
		return favoriteRepo.ErrDuplicate
	}})

	_, err := svc.Add("u1", "prov")
	require.Error(t, err)
	require.Equal(t, utils.CodeConflict, utils.CodeOf(err))
}

func TestRemoveThenReAdd(t *testing.T) {
	stored := map[string]bool{"u1:prov": true}
	repo := &mockFavoriteRepo{
		createFn: func(fav *models.Favorite) error {
			key := fav.UserID + ":" + fav.ProviderID
			if stored[key] {
				return favoriteRepo.ErrDuplicate
			}
			stored[key] = true
			return nil
		},
		deleteFn: func(userID, providerID string) (int64, error) {
			key := userID + ":" + providerID
			if !stored[key] {
				return 0, nil
			}
			delete(stored, key)
			return 1, nil
		},
	}
	svc := newService(repo)

	require.NoError(t, svc.Remove("u1", "prov"))

	fav, err := svc.Add("u1", "prov")
	require.NoError(t, err)
	require.Equal(t, "prov", fav.ProviderID)
}

func TestRemove_MissingFavorite(t *testing.T) {
	svc := newService(&mockFavoriteRepo{deleteFn: func(userID, providerID string) (int64, error) {
		return 0, nil
	}})

	err := svc.Remove("u1", "prov")
	require.Error(t, err)
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestCheck(t *testing.T) {
	svc := newService(&mockFavoriteRepo{existsFn: func(userID, providerID string) (bool, error) {
		return providerID == "prov", nil
	}})

	ok, err := svc.Check("u1", "prov")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Check("u1", "other")
	require.NoError(t, err)
	require.False(t, ok)
}
