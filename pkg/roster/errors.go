package roster

import "errors"

// Roster-specific errors
var (
	ErrURLRequired         = errors.New("roster source URL is required")
	ErrHouseRequired       = errors.New("roster house is required")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrMalformedDocument   = errors.New("malformed member document")
	ErrMissingElement      = errors.New("member element missing")
	ErrInvalidDateOfBirth  = errors.New("invalid date of birth")
	ErrEndpointRenderEmpty = errors.New("rendered roster endpoint is empty")
)
