package models

import "errors"

// ErrNotConfigured signals that the storefront client is missing its store
// domain or access token; the request fails before any upstream call.
var ErrNotConfigured = errors.New("storefront client not configured")
