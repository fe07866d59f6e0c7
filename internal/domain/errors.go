package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation (e.g. an unknown
// status filter or sort column in a query string).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned by the REST data source when the upstream API
// rejects the session token. The session is cleared before it is returned.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSourceUnavailable is returned when the data source cannot be reached or
// answers with a non-success status.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrSourceUnavailable = errors.New("data source unavailable")
