package auth

import (
	"cooksync/domain"
	"cooksync/errors"
	"fmt"
)

// IdentityProvider authenticates a handshake token and produces the
// Identity owned by the connection. It runs exactly once per connection,
// before registration; a failure here aborts the connection with no
// partial state created.
type IdentityProvider struct {
	tokens TokenManager
}

func NewIdentityProvider(tokens TokenManager) *IdentityProvider {
	return &IdentityProvider{tokens: tokens}
}

func (p *IdentityProvider) Authenticate(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.ErrMissingToken
	}

	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	return domain.Identity{
		UserID:      claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}
