package marketo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Authenticate unconditionally performs the OAuth2 client-credentials
// exchange and replaces the cached token with the result.
//
// The identity endpoint takes the grant parameters in the query string of
// a GET request. That is this provider's wire contract (credentials in the
// query, not the body or headers) and is preserved for compatibility.
//
// Most callers never need Authenticate directly: every REST call obtains a
// valid token on its own, refreshing only when the cached one has expired.
func (c *Client) Authenticate(ctx context.Context) (*AuthResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

// authenticateLocked performs the exchange and updates the token cell.
// Callers must hold c.mu for writing. Holding the lock across the network
// call is what makes refresh single-flight: concurrent callers queue here
// and re-check token validity before issuing their own exchange.
func (c *Client) authenticateLocked(ctx context.Context) (*AuthResult, error) {
	if err := c.checkClosed(KindAuth); err != nil {
		return nil, err
	}

	query := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.identityURL+"/oauth/token?"+query.Encode(),
		nil,
	)
	if err != nil {
		return nil, wrapErr(KindAuth, "failed to create token request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapErr(KindAuth, "token request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(KindAuth, "failed to read token response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:       KindAuth,
			Message:    strings.TrimSpace(string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	var result AuthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, wrapErr(KindAuth, "failed to decode token response", err)
	}

	issuedAt := c.now()
	c.token = &token{
		accessToken: result.AccessToken,
		tokenType:   result.TokenType,
		scope:       result.Scope,
		issuedAt:    issuedAt,
		expiresAt:   issuedAt.Add(time.Duration(result.ExpiresIn) * time.Second),
	}

	if c.logger != nil {
		c.logger.Debug("obtained new access token",
			"token_type", result.TokenType,
			"expires_in", result.ExpiresIn,
			"scope", result.Scope,
		)
	}

	return &result, nil
}

// getToken returns a currently-valid access token, authenticating only
// when no token is cached or the cached one has expired. No leeway margin
// is applied: a token is reused right up to its recorded expiry instant.
func (c *Client) getToken(ctx context.Context) (string, error) {
	// Fast path: valid cached token under the read lock.
	c.mu.RLock()
	if err := c.checkClosed(KindAuth); err != nil {
		c.mu.RUnlock()
		return "", err
	}
	if c.token.valid(c.now()) {
		tok := c.token.accessToken
		c.mu.RUnlock()
		return tok, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock; another goroutine may
	// have refreshed while we waited.
	if err := c.checkClosed(KindAuth); err != nil {
		return "", err
	}
	if c.token.valid(c.now()) {
		return c.token.accessToken, nil
	}

	result, err := c.authenticateLocked(ctx)
	if err != nil {
		return "", err
	}
	return result.AccessToken, nil
}
