package gallery

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/iconset"
)

var (
	ErrInvalidSize      = errors.New("invalid icon size")
	ErrMissingSVGSuffix = errors.New("icon path must end with .svg")
)

// statusFor maps lookup errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownLibrary),
		errors.Is(err, iconset.ErrIconNotFound),
		errors.Is(err, iconset.ErrIndexNotFound),
		errors.Is(err, ErrMissingSVGSuffix):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
