package types

import (
	"cosmossdk.io/errors"
)

// Module error kinds, per spec.md §7. None are silently swallowed; the
// matching loop's defensive stuck-row sweep (spec.md §4.4.3, §7) is the one
// place a missing/corrupted referent is handled instead of propagated.
var (
	ErrUnauthorized            = errors.Register(ModuleName, 1, "unauthorized")
	ErrPairNotFound            = errors.Register(ModuleName, 2, "pair not found")
	ErrOrderNotFound           = errors.Register(ModuleName, 3, "order not found")
	ErrAssetMustNotBeZero      = errors.Register(ModuleName, 4, "asset amount must not be zero")
	ErrFundMismatch            = errors.Register(ModuleName, 5, "delivered funds do not match declared offer")
	ErrBelowMinQuote           = errors.Register(ModuleName, 6, "order value is below the minimum quote amount")
	ErrInsufficientOrderAmount = errors.Register(ModuleName, 7, "insufficient order amount left")
	ErrArithmeticUnderflow     = errors.Register(ModuleName, 8, "arithmetic underflow")
	ErrArithmeticOverflow      = errors.Register(ModuleName, 9, "arithmetic overflow")
	ErrCorruptedIndex          = errors.Register(ModuleName, 10, "corrupted index: could not decode order id")
	ErrStorageError            = errors.Register(ModuleName, 11, "storage error")
	ErrInvalidPair             = errors.Register(ModuleName, 12, "invalid pair")
	ErrOrderNotActive          = errors.Register(ModuleName, 13, "order is not active")
	ErrPairAlreadyExists       = errors.Register(ModuleName, 14, "orderbook pair already exists")
)
