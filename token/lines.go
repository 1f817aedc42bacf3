package token

import (
	"bytes"
	"strings"
)

// DefaultTabWidth is the number of spaces a tab expands to.
const DefaultTabWidth = 2

// ExpandTabs replaces every tab in d with width spaces.  Column alignment is
// not taken into account.
func ExpandTabs(d []byte, width int) []byte {
	if width < 0 {
		width = DefaultTabWidth
	}
	if bytes.IndexByte(d, '\t') == -1 {
		return d
	}
	return bytes.ReplaceAll(d, []byte{'\t'}, bytes.Repeat([]byte{' '}, width))
}

// SplitLines splits d on '\n'.  A trailing newline yields a final empty
// line, so joining the result with "\n" reproduces d.
func SplitLines(d []byte) []string {
	return strings.Split(string(d), "\n")
}

// Indent returns the offset of the first non-whitespace character of ln.
func Indent(ln string) (int, error) {
	i := strings.IndexFunc(ln, func(r rune) bool {
		return !isSpace(r)
	})
	if i == -1 {
		return 0, ErrNoIndent
	}
	return i, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsBlank reports whether ln contains only whitespace.
func IsBlank(ln string) bool {
	_, err := Indent(ln)
	return err != nil
}

// IsBlockScalar reports whether a scalar value introduces a block scalar
// whose content continues on more indented lines.
func IsBlockScalar(v string) bool {
	return len(v) > 0 && (v[0] == '|' || v[0] == '>')
}
