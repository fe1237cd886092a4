// Package client talks to the recipe application's REST backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface: the calls the admin pages and the recipe comment
//     widget make (list, delete, update role/status, aggregate counters).
//  2. HTTPClient, a net/http implementation that keeps the session cookie in
//     a cookie jar, performs the form login, and scrapes host pages for the
//     anti-forgery token and hidden inputs (see FetchPage).
//  3. Prometheus instrumentation of every request, registered on a private
//     registry exposed through HTTPClient.Registry.
//
// # No content
//
// A 204 response to a list call is the backend's "nothing here" signal. It
// is decoded uniformly as an empty slice for every list endpoint, never as
// an error.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-success statuses are returned
// as *StatusError, which unwraps to ErrUnauthorized, ErrForbidden,
// ErrNotFound or ErrUnexpectedStatus. Match with errors.Is.
package client
