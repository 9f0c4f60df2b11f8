package auth

import (
	"cooksync/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "kitchen-secret"

func TestTokenRoundTrip(t *testing.T) {
	require := require.New(t)

	// Given a token manager
	manager := NewTokenManager(testSecret, time.Hour)

	// When a token is generated and validated
	token, err := manager.GenerateToken("alice", "alice@example.com", "Alice")
	require.NoError(err)

	claims, err := manager.ValidateToken(token)

	// Then the claims carry the original identity
	require.NoError(err)
	require.Equal("alice", claims.UserID)
	require.Equal("alice@example.com", claims.Email)
	require.Equal("Alice", claims.DisplayName)
	require.Equal("cooksync", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	require := require.New(t)

	// Given a token that expired in the past
	manager := NewTokenManager(testSecret, -time.Minute)
	token, err := manager.GenerateToken("alice", "alice@example.com", "Alice")
	require.NoError(err)

	// When it is validated
	_, err = manager.ValidateToken(token)

	// Then validation fails
	require.Error(err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	require := require.New(t)

	// Given a token signed with another secret
	other := NewTokenManager("other-secret", time.Hour)
	token, err := other.GenerateToken("alice", "alice@example.com", "Alice")
	require.NoError(err)

	// When our manager validates it
	manager := NewTokenManager(testSecret, time.Hour)
	_, err = manager.ValidateToken(token)

	// Then the signature check fails
	require.Error(err)
}

func TestAuthenticateResolvesIdentity(t *testing.T) {
	require := require.New(t)

	// Given a valid handshake token
	manager := NewTokenManager(testSecret, time.Hour)
	provider := NewIdentityProvider(manager)
	token, err := manager.GenerateToken("alice", "alice@example.com", "Alice")
	require.NoError(err)

	// When the connection authenticates
	identity, err := provider.Authenticate(token)

	// Then the identity is fully resolved
	require.NoError(err)
	require.Equal("alice", identity.UserID)
	require.Equal("Alice", identity.DisplayName)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	require := require.New(t)

	provider := NewIdentityProvider(NewTokenManager(testSecret, time.Hour))

	_, err := provider.Authenticate("")
	require.ErrorIs(err, errors.ErrMissingToken)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	require := require.New(t)

	provider := NewIdentityProvider(NewTokenManager(testSecret, time.Hour))

	_, err := provider.Authenticate("not-a-jwt")
	require.ErrorIs(err, errors.ErrInvalidToken)
}
