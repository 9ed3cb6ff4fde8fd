// Package client is the single choke point for outbound calls to the
// WellbeingHub backend.
//
// # Overview
//
// The package provides:
//  1. A request core (HTTPClient.Do and the generic Call) that resolves the
//     target URL against a configured base URL, sets JSON headers, attaches
//     the session token as a bearer credential when asked to, and decodes
//     JSON or empty responses.
//  2. Typed endpoint helpers (see the Client interface) for the user,
//     marketplace and group endpoints.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations,
//     OpenRepository) for the session store backends.
//
// # Error Handling
//
// Every non-2xx response becomes an *APIError carrying the status code,
// status text and a best-effort body snippet. APIError unwraps to
// ErrUnauthorized (401/403) or ErrUnavailable (502/503/504) so callers can
// use errors.Is. Transport failures are returned as net/http produced them.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Calls block until the round trip
// completes or ctx is done; the package adds no retries or timeouts of its
// own.
package client
