package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/pkg/config"
)

var ErrMissingSecret = errors.New("jwt: access secret must be set")

type JWTManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(tokenString string) (*config.UserClaims, error)
}

// JwtManager verifies access tokens issued by the identity service.
// Issuing is kept for tooling and tests.
type JwtManager struct {
	accessSecret []byte
}

func NewJwtManager(accessSecret string) (*JwtManager, error) {
	if accessSecret == "" {
		return nil, ErrMissingSecret
	}
	return &JwtManager{
		accessSecret: []byte(accessSecret),
	}, nil
}

// GenerateAccessToken creates a signed access token for the given identity.
func (jm *JwtManager) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	now := time.Now()

	claims := config.UserClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jm.accessSecret)
}

// ValidateAccessToken verifies and returns the claims from an access token string.
func (jm *JwtManager) ValidateAccessToken(tokenString string) (*config.UserClaims, error) {
	claims := &config.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return jm.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("invalid access token: missing user id")
	}

	return claims, nil
}
