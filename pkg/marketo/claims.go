package marketo

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims decodes the cached access token as a JWT and returns its
// claims, without any signature or claim validation. Access tokens from
// this provider are normally opaque, but some deployments issue JWTs; the
// claims are useful for diagnostics (inspecting scope or expiry as the
// server recorded them). Returns ok=false when no token is cached or the
// token is not JWT-shaped. Never use the result for authorization
// decisions: nothing is verified.
func (c *Client) TokenClaims() (claims jwt.MapClaims, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil {
		return nil, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(c.token.accessToken, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}

	claims, ok = parsed.Claims.(jwt.MapClaims)
	return claims, ok
}
