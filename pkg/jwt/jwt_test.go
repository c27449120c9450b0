package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	jm, err := NewJwtManager("test-access-secret-key-for-testing")
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jm.GenerateAccessToken(userID, config.RoleSeller)
	require.NoError(t, err)

	claims, err := jm.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, config.RoleSeller, claims.Role)
}

func TestValidateAccessTokenRejectsForeignSecret(t *testing.T) {
	issuer, err := NewJwtManager("issuer-secret")
	require.NoError(t, err)
	verifier, err := NewJwtManager("other-secret")
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), config.RoleBidder)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = verifier.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestNewJwtManagerRequiresSecret(t *testing.T) {
	_, err := NewJwtManager("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
