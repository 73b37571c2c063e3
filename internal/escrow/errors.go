package escrow

import (
	"fmt"

	"escrow-marketplace/internal/model"
)

// Domain-specific errors for the escrow package.
var (
	ErrMissingCaller       = fmt.Errorf("%w: caller identity is required", model.ErrUnauthorized)
	ErrItemNotFound        = fmt.Errorf("%w: item not found", model.ErrNotFound)
	ErrItemNotAvailable    = fmt.Errorf("%w: item is not available", model.ErrInvalidState)
	ErrSelfPurchase        = fmt.Errorf("%w: seller cannot buy their own item", model.ErrUnauthorized)
	ErrInvalidPayment      = fmt.Errorf("%w: paid amount has too many digits", model.ErrInvalidInput)
	ErrInsufficientPayment = fmt.Errorf("%w: paid amount is below the item price", model.ErrInsufficientPayment)
	ErrNotOwner            = fmt.Errorf("%w: only the owner can resolve pending purchases", model.ErrUnauthorized)
	ErrPendingNotFound     = fmt.Errorf("%w: pending purchase not found", model.ErrNotFound)
	ErrAlreadyResolved     = fmt.Errorf("%w: pending purchase is already resolved", model.ErrInvalidState)
)
