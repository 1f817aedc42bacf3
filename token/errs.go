package token

import "errors"

var (
	ErrNoIndent = errors.New("line has no content")
)
