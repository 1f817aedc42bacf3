package ir

import (
	"errors"
)

var (
	errInternal = errors.New("internal error")

	ErrAddressNotFound = errors.New("address not found")
	ErrBadOrder        = errors.New("broken output order")
)
