package model

import "errors"

var (
	// ErrNoWildcard is returned when a URL template has no '*' marker.
	ErrNoWildcard = errors.New("template must contain wildcard (*)")

	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("start value cannot be greater than end value")

	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown playlist format")
)
