package domain

import "errors"

var (
	// ErrNotFound ends an enumeration or reports a missing item
	ErrNotFound = errors.New("not found")

	// ErrUnsupported means a library, symbol or optional interface is not
	// available on this host
	ErrUnsupported = errors.New("capability not available")

	// ErrInsufficientBuffer means the display topology changed between the
	// size query and the fetch
	ErrInsufficientBuffer = errors.New("insufficient buffer")

	// ErrAccessDenied is returned when the OS refused the operation
	ErrAccessDenied = errors.New("access denied")
)
