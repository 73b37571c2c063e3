package catalog

import (
	"fmt"

	"escrow-marketplace/internal/model"
)

// Domain-specific errors for the catalog package.
var (
	ErrEmptyName          = fmt.Errorf("%w: name cannot be empty", model.ErrInvalidInput)
	ErrEmptyDescription   = fmt.Errorf("%w: description cannot be empty", model.ErrInvalidInput)
	ErrInvalidPrice       = fmt.Errorf("%w: price must be greater than 0", model.ErrInvalidInput)
	ErrMetadataRefTooLong = fmt.Errorf("%w: metadata reference is too long", model.ErrInvalidInput)
	ErrMissingCaller      = fmt.Errorf("%w: caller identity is required", model.ErrUnauthorized)
	ErrItemNotFound       = fmt.Errorf("%w: item not found", model.ErrNotFound)
)
