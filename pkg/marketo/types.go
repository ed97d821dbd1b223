package marketo

// ============================================================================
// Token Types
// ============================================================================

// AuthResult is the identity endpoint's response to a successful
// client-credentials exchange. It is a plain data-transfer value; the
// client keeps its own copy of the token internally and never hands this
// struct out again after returning it.
type AuthResult struct {
	// AccessToken is the bearer token used to authorize REST calls
	AccessToken string `json:"access_token"`

	// TokenType is the token type, "bearer" for this identity provider
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds from the moment of issue
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of scopes granted to this token
	Scope string `json:"scope"`
}

// ============================================================================
// Response Envelope Types
// ============================================================================

// ResponseError is one entry of the "errors" array carried by an API
// response envelope when success is false.
type ResponseError struct {
	// Code is the API error code (e.g. "1006", "611")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// leadResponse is the envelope returned by lead read endpoints.
type leadResponse struct {
	RequestID string          `json:"requestId"`
	Success   bool            `json:"success"`
	Result    []Lead          `json:"result"`
	Errors    []ResponseError `json:"errors,omitempty"`
}

// leadChangeResponse is the envelope returned by lead write endpoints.
type leadChangeResponse struct {
	RequestID string          `json:"requestId"`
	Success   bool            `json:"success"`
	Result    []LeadChange    `json:"result"`
	Errors    []ResponseError `json:"errors,omitempty"`
}

// usageResponse is the envelope returned by the daily usage endpoint.
type usageResponse struct {
	RequestID string          `json:"requestId"`
	Success   bool            `json:"success"`
	Result    []UsageEntry    `json:"result"`
	Errors    []ResponseError `json:"errors,omitempty"`
}

// ============================================================================
// Lead Types
// ============================================================================

// Lead is a single lead record. Lead schemas are instance-specific, so the
// record is an open field mapping rather than a fixed struct.
type Lead map[string]any

// LeadChange reports the outcome of a write operation for one lead.
type LeadChange struct {
	// ID is the lead's numeric identifier
	ID int `json:"id"`

	// Status is the per-record outcome ("created", "updated", "deleted", "skipped")
	Status string `json:"status"`

	// Reasons lists why a record was skipped, when it was
	Reasons []ResponseError `json:"reasons,omitempty"`
}

// ============================================================================
// Usage Types
// ============================================================================

// UsageEntry is one day of API call usage.
type UsageEntry struct {
	// Date is the usage day in YYYY-MM-DD form
	Date string `json:"date"`

	// Total is the total number of API calls made that day
	Total int `json:"total"`

	// Users breaks the total down per API user
	Users []UserUsage `json:"users,omitempty"`
}

// UserUsage is one API user's share of a day's usage.
type UserUsage struct {
	UserID string `json:"userId"`
	Count  int    `json:"count"`
}
