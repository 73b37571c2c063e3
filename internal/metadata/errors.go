package metadata

import (
	"fmt"

	"escrow-marketplace/internal/model"
)

// Domain-specific errors for the metadata package.
var (
	ErrEmptyFile      = fmt.Errorf("%w: no file uploaded", model.ErrInvalidInput)
	ErrTooLarge       = fmt.Errorf("%w: file exceeds the upload limit", model.ErrInvalidInput)
	ErrNotImage       = fmt.Errorf("%w: only image files are allowed", model.ErrInvalidInput)
	ErrInvalidName    = fmt.Errorf("%w: invalid file name", model.ErrInvalidInput)
	ErrObjectNotFound = fmt.Errorf("%w: file not found", model.ErrNotFound)
)
