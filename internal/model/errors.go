package model

import "errors"

// Error kinds shared by every domain package. Domain errors wrap exactly one of
// these so callers can branch on the kind with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInsufficientPayment = errors.New("insufficient payment")
)
