package user

import (
	userRepo "qserve/database/repository/user"
	walletRepo "qserve/database/repository/wallet"
	"qserve/models"
)

// RegisterRequest carries the fields collected at sign-up.
type RegisterRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Occupation  string   `json:"occupation,omitempty"`
	Charge      *float64 `json:"charge,omitempty"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// UserService handles identity and profile operations.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	UpdateProfile(req models.UserUpdateRequest) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetProviders(occupation string) ([]models.User, error)
	SetProfileImage(userID, url string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Wallets walletRepo.WalletRepository
}
