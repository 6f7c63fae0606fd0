package catalog

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid icon catalog")
	ErrDuplicateKey   = errors.New("duplicate library key")
	ErrUnknownLibrary = errors.New("unknown icon library")
	ErrReadCatalog    = errors.New("failed to read icon catalog")
)
