// Package common contains small constants and helpers shared across the
// client packages.
package common

// HTTP header names and values used on outbound requests.
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)
