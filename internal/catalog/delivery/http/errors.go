package http

import (
	"errors"
	"net/http"

	"escrow-marketplace/internal/model"
	pkgErrors "escrow-marketplace/pkg/errors"
)

var (
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errInvalidPrice = pkgErrors.NewHTTPError(http.StatusBadRequest, "price must be a decimal number")
)

// mapError translates catalog errors into HTTP errors by kind.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
