package adapter

import "errors"

// Errors returned for non-2xx replies of the preferences server. The reply
// body is appended to the wrapped message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("preferences storage is unavailable")
)
