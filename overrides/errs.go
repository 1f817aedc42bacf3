package overrides

import "errors"

var (
	ErrNotString = errors.New("override value is not a string")
	ErrNotMap    = errors.New("annotations are not a mapping")
)
