package service

import (
	"fmt"

	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/itsDrac/bidhub/pkg/jwt"
)

// AuthServicer resolves a bearer token into the caller's identity. Tokens are
// issued elsewhere.
type AuthServicer interface {
	ValidateAccessToken(tokenString string) (*config.UserClaims, error)
}

type AuthService struct {
	JM jwt.JWTManager
}

func NewAuthService(jm jwt.JWTManager) (*AuthService, error) {
	if jm == nil {
		return nil, fmt.Errorf("failed to initialize AuthService: %w", jwt.ErrMissingSecret)
	}
	return &AuthService{
		JM: jm,
	}, nil
}

func (as *AuthService) ValidateAccessToken(tokenString string) (*config.UserClaims, error) {
	return as.JM.ValidateAccessToken(tokenString)
}
