/*
Package marketo provides a client for a Marketo-style REST API secured by
an OAuth2 client-credentials identity endpoint.

# Overview

The client owns the full token lifecycle: it performs the credentials
exchange, caches the bearer token together with its expiry instant, and
re-authenticates transparently the first time a call finds the cached
token expired. Callers never handle tokens themselves.

	client, err := marketo.New(
		"https://123-ABC-456.mktorest.com",
		clientID,
		clientSecret,
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	lead, err := client.GetLeadByID(ctx, 42, "email", "firstName")

Generic calls go through Execute (or the Get/Post/Put/Delete shorthands),
which return the decoded JSON body as an open mapping:

	result, err := client.Get(ctx, "v1/campaigns.json", map[string]string{
		"batchSize": "10",
	})

# Token lifecycle

Authenticate performs the exchange unconditionally; every REST call does
it lazily instead, only when no valid token is cached. Expiry is computed
as issue time plus the endpoint's expires_in seconds and compared against
wall-clock time with no leeway: a token is reused up to and including its
expiry instant, and an expires_in of 0 forces a fresh exchange on every
call.

The identity endpoint's contract is a GET to {identityURL}/oauth/token
with grant_type, client_id and client_secret in the query string. REST
calls share the same base URL under the /rest prefix; WithRestBaseURL
overrides that for split deployments.

# Errors

Every failure surfaces as an *Error tagged KindAuth (token exchange) or
KindRequest (REST dispatch), carrying the HTTP status when one was
received and the wrapped cause when the failure was transport- or
decode-level. The client never retries; check the kind with IsAuthError
and IsRequestError, or reach the cause via errors.As / errors.Unwrap.

# Concurrency

A Client may be shared freely across goroutines. Token refresh is
single-flight: callers that race on an expired token serialize on an
internal lock and all adopt the one refreshed token rather than each
performing their own exchange.
*/
package marketo
