package entities

import "errors"

var (
	// ErrInvalidInput indicates a calculator was called with out-of-range
	// parameters. Validation happens before any computation; no partial
	// results are produced.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMarginExhausted indicates the platform fee plus affiliate rate
	// consume the entire ticket margin, so no ticket count can ever cover
	// the prize. The inputs are individually valid; the combination is not.
	ErrMarginExhausted = errors.New("margin exhausted")

	// ErrInfeasible indicates the optimizer exhausted its search budget
	// without finding a ticket price and odds pair that satisfies both the
	// creator profit floor and the tier RTP minimum.
	ErrInfeasible = errors.New("no feasible setup")
)
