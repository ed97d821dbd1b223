package marketo

import (
	"context"
	"fmt"
	"strings"
)

// envelopeError converts an unsuccessful response envelope into a
// request-kind error carrying the first API error code and message. A
// successful envelope returns nil. Envelope failures arrive with a 2xx
// HTTP status, so this is the only place they are detected.
func envelopeError(requestID string, success bool, errs []ResponseError) error {
	if success {
		return nil
	}

	message := "api reported failure"
	if len(errs) > 0 {
		message = fmt.Sprintf("%s: %s", errs[0].Code, errs[0].Message)
	}
	if requestID != "" {
		message = fmt.Sprintf("%s (request %s)", message, requestID)
	}

	return &Error{Kind: KindRequest, Message: message}
}

// GetLeadByID retrieves a single lead record by its numeric id. When
// fields are given, only those lead fields are requested. Returns nil
// without error when no lead exists with that id.
func (c *Client) GetLeadByID(ctx context.Context, id int, fields ...string) (Lead, error) {
	query := map[string]string{}
	if len(fields) > 0 {
		query["fields"] = strings.Join(fields, ",")
	}

	var resp leadResponse
	if err := c.ExecuteInto(ctx, MethodGet, fmt.Sprintf("v1/lead/%d.json", id), query, nil, &resp); err != nil {
		return nil, err
	}
	if err := envelopeError(resp.RequestID, resp.Success, resp.Errors); err != nil {
		return nil, err
	}

	if len(resp.Result) == 0 {
		return nil, nil
	}
	return resp.Result[0], nil
}

// CreateOrUpdateLeads upserts a batch of lead records and reports the
// per-record outcome. action defaults to "createOrUpdate" and lookupField
// to "email" when empty, mirroring the API's own defaults.
func (c *Client) CreateOrUpdateLeads(ctx context.Context, action, lookupField string, leads []Lead) ([]LeadChange, error) {
	if action == "" {
		action = "createOrUpdate"
	}
	if lookupField == "" {
		lookupField = "email"
	}

	body := map[string]any{
		"action":      action,
		"lookupField": lookupField,
		"input":       leads,
	}

	var resp leadChangeResponse
	if err := c.ExecuteInto(ctx, MethodPost, "v1/leads.json", nil, body, &resp); err != nil {
		return nil, err
	}
	if err := envelopeError(resp.RequestID, resp.Success, resp.Errors); err != nil {
		return nil, err
	}

	return resp.Result, nil
}

// DeleteLeads deletes a batch of leads by id and reports the per-record
// outcome. Deletion goes through POST v1/leads/delete.json, which is the
// API's batch-delete contract.
func (c *Client) DeleteLeads(ctx context.Context, ids []int) ([]LeadChange, error) {
	input := make([]map[string]int, 0, len(ids))
	for _, id := range ids {
		input = append(input, map[string]int{"id": id})
	}

	body := map[string]any{"input": input}

	var resp leadChangeResponse
	if err := c.ExecuteInto(ctx, MethodPost, "v1/leads/delete.json", nil, body, &resp); err != nil {
		return nil, err
	}
	if err := envelopeError(resp.RequestID, resp.Success, resp.Errors); err != nil {
		return nil, err
	}

	return resp.Result, nil
}

// GetDailyUsage retrieves the current day's API usage counts.
func (c *Client) GetDailyUsage(ctx context.Context) ([]UsageEntry, error) {
	var resp usageResponse
	if err := c.ExecuteInto(ctx, MethodGet, "v1/stats/usage.json", nil, nil, &resp); err != nil {
		return nil, err
	}
	if err := envelopeError(resp.RequestID, resp.Success, resp.Errors); err != nil {
		return nil, err
	}

	return resp.Result, nil
}
