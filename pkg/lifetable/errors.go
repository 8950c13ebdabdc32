package lifetable

import "errors"

// Life table errors
var (
	ErrPathRequired  = errors.New("life table path is required")
	ErrShortRow      = errors.New("life table row has too few fields")
	ErrInvalidField  = errors.New("life table field is not a number")
	ErrNegativeValue = errors.New("life table value is negative")
	ErrEmptyTable    = errors.New("life table has no rows")
	ErrAgeNotFound   = errors.New("age not present in life table")
	ErrUnknownGender = errors.New("unknown gender")
)
