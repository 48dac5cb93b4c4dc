package user

import (
	"qserve/models"
	"qserve/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UpdateProfile merges the provided fields into the user record. An email
// change is re-checked for uniqueness; a password change is re-hashed.
func (s *DefaultUserService) UpdateProfile(req models.UserUpdateRequest) (*models.User, error) {
	current, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "profile update failed", err)
	}
	if current == nil {
		return nil, utils.E(utils.CodeNotFound, "user not found")
	}

	updateDoc := bson.M{}
	if req.Name != nil {
		updateDoc["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updateDoc["phone_number"] = *req.PhoneNumber
	}
	if req.Email != nil && *req.Email != current.Email {
		if !emailPattern.MatchString(*req.Email) {
			return nil, utils.E(utils.CodeValidation, "invalid email address")
		}
		other, err := s.Repo.GetByEmail(*req.Email)
		if err != nil {
			return nil, utils.Wrap(utils.CodeInternal, "profile update failed", err)
		}
		if other != nil {
			return nil, utils.E(utils.CodeConflict, "a user with this email already exists")
		}
		updateDoc["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("UpdateProfile: failed to hash password", zap.Error(err))
			return nil, utils.Wrap(utils.CodeInternal, "profile update failed", err)
		}
		updateDoc["password_hash"] = string(hashed)
	}
	if req.Occupation != nil {
		updateDoc["occupation"] = *req.Occupation
	}
	if req.Charge != nil {
		if *req.Charge < 0 {
			return nil, utils.E(utils.CodeValidation, "charge must not be negative")
		}
		updateDoc["charge"] = *req.Charge
	}
	if req.Longitude != nil {
		updateDoc["longitude"] = *req.Longitude
	}
	if req.Latitude != nil {
		updateDoc["latitude"] = *req.Latitude
	}
	if req.FCMToken != nil {
		updateDoc["fcm_token"] = *req.FCMToken
	}

	if len(updateDoc) > 0 {
		if err := s.Repo.Update(req.ID, updateDoc); err != nil {
			return nil, utils.Wrap(utils.CodeInternal, "profile update failed", err)
		}
	}

	return s.GetUserByID(req.ID)
}

// GetUserByID retrieves a user by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch user", err)
	}
	if userRec == nil {
		return nil, utils.E(utils.CodeNotFound, "user not found")
	}
	return userRec, nil
}

// GetProviders lists providers, optionally filtered by occupation.
func (s *DefaultUserService) GetProviders(occupation string) ([]models.User, error) {
	providers, err := s.Repo.GetProviders(occupation)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch providers", err)
	}
	return providers, nil
}

// SetProfileImage stores the uploaded image URL on the user record.
func (s *DefaultUserService) SetProfileImage(userID, url string) error {
	if err := s.Repo.Update(userID, bson.M{"profile_image": url}); err != nil {
		return utils.Wrap(utils.CodeInternal, "failed to update profile image", err)
	}
	return nil
}
