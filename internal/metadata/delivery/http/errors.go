package http

import (
	"errors"
	"net/http"

	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/internal/model"
	pkgErrors "escrow-marketplace/pkg/errors"
)

var errNoFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "no file uploaded")

func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, metadata.ErrTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, model.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
