package ledger

import (
	"fmt"

	"escrow-marketplace/internal/model"
)

var (
	ErrMissingCaller       = fmt.Errorf("%w: caller identity is required", model.ErrUnauthorized)
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be positive", model.ErrInvalidInput)
	ErrInvalidAccount      = fmt.Errorf("%w: destination must be an identity account", model.ErrInvalidInput)
	ErrInvalidKind         = fmt.Errorf("%w: entry kind does not move custody out", model.ErrInvalidInput)
	ErrInsufficientCustody = fmt.Errorf("%w: custody balance is lower than the amount released", model.ErrInvalidState)
	ErrPendingNotFound     = fmt.Errorf("%w: pending purchase not found", model.ErrNotFound)
)
