package iconset

import "errors"

var (
	// ErrIndexNotFound is returned when the index resource of a set or variant is missing.
	ErrIndexNotFound = errors.New("icon index not found")

	// ErrIndexDecode is returned when an index resource is not a JSON array of strings.
	// It points at a broken asset bundle rather than a bad query.
	ErrIndexDecode = errors.New("icon index is not a JSON array of strings")

	// ErrIconNotFound is returned when no resource matches the requested icon,
	// neither by exact key nor ignoring case.
	ErrIconNotFound = errors.New("icon not found")
)
