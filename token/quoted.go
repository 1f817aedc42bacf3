package token

import "strings"

// Region is a half open byte range [Start, End) of a line.
type Region struct {
	Start, End int
}

func (r Region) contains(i int) bool {
	return r.Start < i && i < r.End
}

// QuotedRegions returns the quoted substrings of s, scanning left to right.
// A region starts at a single or double quote and ends at the next quote of
// the same kind.  An unterminated quote does not open a region.  No escape
// sequences are recognised.
func QuotedRegions(s string) []Region {
	var res []Region
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '"' && c != '\'' {
			i++
			continue
		}
		j := strings.IndexByte(s[i+1:], c)
		if j == -1 {
			i++
			continue
		}
		end := i + 1 + j + 1
		res = append(res, Region{Start: i, End: end})
		i = end
	}
	return res
}

func quoted(rs []Region, i int) bool {
	for _, r := range rs {
		if r.Start > i {
			return false
		}
		if r.contains(i) {
			return true
		}
	}
	return false
}

// CommentStart returns the index of the first '#' in s which is not part of
// a quoted substring, or -1.
func CommentStart(s string) int {
	rs := QuotedRegions(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && !quoted(rs, i) {
			return i
		}
	}
	return -1
}

// MappingColon returns the index of the ':' separating a key from its value
// in the code portion s, or -1.  The colon must be outside quotes and be
// followed by whitespace or the end of s, so "http://x" holds no mapping.
func MappingColon(s string) int {
	rs := QuotedRegions(s)
	for i := 0; i < len(s); i++ {
		if s[i] != ':' || quoted(rs, i) {
			continue
		}
		if i+1 == len(s) || isSpace(rune(s[i+1])) {
			return i
		}
	}
	return -1
}

// SplitComment splits a line into the part before the first unquoted '#'
// and the trimmed comment text after it.  ok is false if there is no
// comment.
func SplitComment(s string) (code, comment string, ok bool) {
	i := CommentStart(s)
	if i == -1 {
		return s, "", false
	}
	return s[:i], strings.TrimSpace(s[i+1:]), true
}
