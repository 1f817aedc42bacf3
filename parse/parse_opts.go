package parse

import "github.com/signadot/confmerge/token"

type parseOpts struct {
	tabWidth    int
	annotations bool
}

type ParseOption func(*parseOpts)

// ParseTabWidth sets the number of spaces a tab expands to.
func ParseTabWidth(n int) ParseOption {
	return func(o *parseOpts) { o.tabWidth = n }
}

// ParseAnnotations controls whether "[MERGE ...]" markers in trailing
// comments are parsed as annotations.  It is on by default.
func ParseAnnotations(v bool) ParseOption {
	return func(o *parseOpts) { o.annotations = v }
}

func defaultOpts() *parseOpts {
	return &parseOpts{tabWidth: token.DefaultTabWidth, annotations: true}
}
