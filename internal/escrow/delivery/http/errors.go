package http

import (
	"errors"
	"net/http"

	"escrow-marketplace/internal/model"
	pkgErrors "escrow-marketplace/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errInvalidPaid = pkgErrors.NewHTTPError(http.StatusBadRequest, "paid must be a decimal number")
)

// mapError translates escrow errors into HTTP errors by kind.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrInsufficientPayment):
		return pkgErrors.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
