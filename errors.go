package rustacart

import "errors"

var (
	ErrInvalidDecimal = errors.New("rustacart: invalid decimal")
	ErrNonFinite      = errors.New("rustacart: amount is not finite")

	ErrDuplicateName  = errors.New("rustacart: name already present")
	ErrEmptyName      = errors.New("rustacart: name is empty")
	ErrNegativePrice  = errors.New("rustacart: negative amount")
	ErrAlreadyShipped = errors.New("rustacart: basket already has a shipping region")

	ErrUnknownRegion  = errors.New("rustacart: unknown region")
	ErrUnknownProduct = errors.New("rustacart: unknown product")
	ErrNoProducts     = errors.New("rustacart: quote needs at least one product")

	// ErrHook wraps the first error returned by a cart hook.
	ErrHook = errors.New("rustacart: hook failed")
)
