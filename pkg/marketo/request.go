package marketo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aramnhammer/marketo-go/pkg/idx"
)

// Method is the closed set of HTTP verbs the dispatcher supports. Using a
// dedicated type keeps unsupported verbs out by construction; the string
// entry point is ParseMethod.
type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
)

// String returns the wire form of the method.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a verb string (case-insensitive) onto a Method. Any
// verb outside GET/POST/PUT/DELETE fails with a request-kind error before
// any network activity.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case http.MethodGet:
		return MethodGet, nil
	case http.MethodPost:
		return MethodPost, nil
	case http.MethodPut:
		return MethodPut, nil
	case http.MethodDelete:
		return MethodDelete, nil
	default:
		return 0, &Error{Kind: KindRequest, Message: fmt.Sprintf("unsupported method %q", s)}
	}
}

// Execute performs one authenticated REST call and returns the decoded
// JSON body as an open mapping. The response schema is not validated here;
// interpreting it is the caller's concern. Typed decoding is available via
// ExecuteInto.
//
// query may be nil; body is JSON-serialized for POST and PUT when non-nil
// and ignored for GET and DELETE. A single failure is reported immediately
// as an *Error; no retries are performed and no payload accompanies an
// error.
func (c *Client) Execute(
	ctx context.Context,
	method Method,
	endpoint string,
	query map[string]string,
	body any,
) (map[string]any, error) {
	var out map[string]any
	if err := c.ExecuteInto(ctx, method, endpoint, query, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExecuteInto is Execute with caller-typed decoding: the 2xx response body
// is unmarshaled into out. A nil out discards the body.
func (c *Client) ExecuteInto(
	ctx context.Context,
	method Method,
	endpoint string,
	query map[string]string,
	body any,
	out any,
) error {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		return &Error{Kind: KindRequest, Message: fmt.Sprintf("unsupported method %q", method)}
	}

	c.mu.RLock()
	closedErr := c.checkClosed(KindRequest)
	c.mu.RUnlock()
	if closedErr != nil {
		return closedErr
	}

	// May trigger a token refresh; its errors are already *Error and
	// propagate unchanged.
	tok, err := c.getToken(ctx)
	if err != nil {
		return err
	}

	target := c.restURL + "/rest/" + strings.TrimPrefix(endpoint, "/")
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	var payload io.Reader
	if body != nil && (method == MethodPost || method == MethodPut) {
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrapErr(KindRequest, "failed to encode request body", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method.String(), target, payload)
	if err != nil {
		return wrapErr(KindRequest, "failed to create request", err)
	}

	requestID := idx.New()
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID.String())

	if c.logger != nil {
		c.logger.Debug("dispatching request",
			"method", method.String(),
			"endpoint", endpoint,
			"request_id", requestID.String(),
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapErr(KindRequest, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapErr(KindRequest, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Kind:       KindRequest,
			Message:    strings.TrimSpace(string(respBody)),
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return wrapErr(KindRequest, "failed to decode response body", err)
	}

	return nil
}

// Get performs an authenticated GET against a REST endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, query map[string]string) (map[string]any, error) {
	return c.Execute(ctx, MethodGet, endpoint, query, nil)
}

// Post performs an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, query map[string]string, body any) (map[string]any, error) {
	return c.Execute(ctx, MethodPost, endpoint, query, body)
}

// Put performs an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, query map[string]string, body any) (map[string]any, error) {
	return c.Execute(ctx, MethodPut, endpoint, query, body)
}

// Delete performs an authenticated DELETE against a REST endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, query map[string]string) (map[string]any, error) {
	return c.Execute(ctx, MethodDelete, endpoint, query, nil)
}
