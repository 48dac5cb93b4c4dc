package user

import (
	"regexp"

	"qserve/models"
	"qserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register validates the profile, stores a hashed password and provisions a
// wallet account. The wallet step is best-effort: a failure there does not
// fail the registration.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PhoneNumber == "" {
		return nil, utils.E(utils.CodeValidation, "name, email, phone number and password are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, utils.E(utils.CodeValidation, "invalid email address")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	switch role {
	case models.RoleCustomer, models.RoleProvider, models.RoleAdmin:
	default:
		return nil, utils.Ef(utils.CodeValidation, "unknown role %q", role)
	}
	var charge float64
	if role == models.RoleProvider {
		if req.Occupation == "" {
			return nil, utils.E(utils.CodeValidation, "occupation is required for providers")
		}
		if req.Charge == nil {
			return nil, utils.E(utils.CodeValidation, "charge is required for providers")
		}
		if *req.Charge < 0 {
			return nil, utils.E(utils.CodeValidation, "charge must not be negative")
		}
		charge = *req.Charge
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "registration failed, please try again", err)
	}
	if existing != nil {
		return nil, utils.E(utils.CodeConflict, "a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "registration failed, please try again", err)
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		PasswordHash: string(hashedPassword),
		Occupation:   req.Occupation,
		Charge:       charge,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "registration failed, please try again", err)
	}

	wallet := models.WalletAccount{
		ID:       uuid.New().String(),
		OwnerID:  userObj.ID,
		Balance:  0,
		Currency: models.DefaultWalletCurrency,
	}
	if err := s.Wallets.Create(&wallet); err != nil {
		utils.GetLogger().Warn("Register: wallet provisioning failed",
			zap.String("userID", userObj.ID), zap.Error(err))
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Role, utils.RegistrationTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "registration failed, please try again", err)
	}

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Role:  userObj.Role,
	}, nil
}
