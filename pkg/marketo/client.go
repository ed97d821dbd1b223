package marketo

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// HTTPDoer is the narrow transport capability the client depends on.
// *http.Client satisfies it; tests and callers may substitute their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client authenticates against an OAuth2 client-credentials identity
// endpoint, caches the resulting bearer token, and issues authenticated
// REST calls to the backend API, re-authenticating transparently when the
// cached token expires.
//
// A Client is safe for concurrent use. Token refresh is single-flight:
// concurrent callers that observe an expired token serialize on an
// internal lock, so at most one token exchange is in flight at a time.
type Client struct {
	identityURL  string
	restURL      string
	clientID     string
	clientSecret string

	httpClient HTTPDoer
	logger     *slog.Logger

	mu     sync.RWMutex
	token  *token
	closed bool

	// now is the clock used for expiry arithmetic. Wall-clock on purpose:
	// expiry is computed and compared against real time, matching the
	// identity provider's expires_in contract. Overridden in tests.
	now func() time.Time
}

// token is the cached bearer token cell. It is replaced wholesale on
// refresh, never partially mutated, and only touched under Client.mu.
type token struct {
	accessToken string
	tokenType   string
	scope       string
	issuedAt    time.Time
	expiresAt   time.Time
}

// valid reports whether the token exists and has not passed its expiry
// instant. The boundary is strict: a token is valid up to and including
// its expiry instant, so expires_in=0 invalidates on the next clock tick.
func (t *token) valid(now time.Time) bool {
	return t != nil && !now.After(t.expiresAt)
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for all HTTP calls. The default
// is a plain *http.Client; no timeout is configured by the SDK, so the
// transport's own defaults apply.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithLogger sets a structured logger for token refresh and request
// dispatch events. Without it the client is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRestBaseURL overrides the base URL used for REST calls. By default
// REST calls reuse the identity base URL under the /rest prefix, which is
// the backend's own contract; point this elsewhere only when targeting a
// split deployment.
func WithRestBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.restURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// New creates a Client for the given identity endpoint and credentials.
// All three values are required; there are no defaults. Credentials are
// never mutated after construction.
func New(identityURL, clientID, clientSecret string, opts ...Option) (*Client, error) {
	identityURL = strings.TrimSuffix(identityURL, "/")
	if identityURL == "" {
		return nil, fmt.Errorf("marketo: identity URL is required")
	}
	if clientID == "" {
		return nil, fmt.Errorf("marketo: client id is required")
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("marketo: client secret is required")
	}

	c := &Client{
		identityURL:  identityURL,
		restURL:      identityURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{},
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close marks the client closed and releases idle connections on the
// underlying transport. Any Execute or Authenticate call after Close
// fails with an *Error; the client never panics or hangs once closed.
// Close is idempotent.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.token = nil

	if hc, ok := c.httpClient.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}

// checkClosed returns a kind-tagged error when the client has been closed.
// Callers must hold c.mu (read or write).
func (c *Client) checkClosed(kind Kind) error {
	if c.closed {
		return &Error{Kind: kind, Message: "client is closed"}
	}
	return nil
}
