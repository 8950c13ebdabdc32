package forecast

import "errors"

// Forecast errors
var (
	ErrUnknownFactor        = errors.New("unknown projection factor")
	ErrLifetimeNotProjected = errors.New("lifetime projection not computed for member")
	ErrNegativeResidual     = errors.New("other count is negative")
)
