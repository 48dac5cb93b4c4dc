package user

import (
	"qserve/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks the credentials and issues a login token. Login
// tokens are shorter-lived than registration tokens.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "authentication failed, please try again", err)
	}
	if userRec == nil {
		return nil, utils.E(utils.CodeInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, utils.E(utils.CodeInvalidCredentials, "invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, utils.LoginTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, utils.Wrap(utils.CodeInternal, "authentication failed, please try again", err)
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Role:  userRec.Role,
	}, nil
}
