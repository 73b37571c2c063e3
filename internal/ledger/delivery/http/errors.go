package http

import (
	"errors"
	"net/http"

	"escrow-marketplace/internal/model"
	pkgErrors "escrow-marketplace/pkg/errors"
)

// mapError translates ledger errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
