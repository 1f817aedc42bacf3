package merge

import "errors"

var (
	errInternal = errors.New("internal merge error")
)
