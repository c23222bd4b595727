package orderbook

import "github.com/cockroachdb/errors"

var (
	ErrDuplicateOrder    = errors.New("duplicate order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnauthorized      = errors.New("order owned by another client")
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrSideMismatch      = errors.New("side does not match resting order")
)
