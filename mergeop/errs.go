package mergeop

import "errors"

var (
	ErrAnnotationSyntax = errors.New("annotation syntax error")
)
