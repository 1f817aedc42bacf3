package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff.  FromLine and ToLine are 1-based line numbers
// in the respective text, 0 where the line does not occur.
type Line struct {
	Op       Op
	Text     string
	FromLine int
	ToLine   int
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Line
	fi, ti := 1, 1
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			ln := Line{Text: runeMap[r]}
			switch diff.Type {
			case diffpatch.DiffDelete:
				ln.Op = Delete
				ln.FromLine = fi
				fi++
			case diffpatch.DiffInsert:
				ln.Op = Insert
				ln.ToLine = ti
				ti++
			case diffpatch.DiffEqual:
				ln.FromLine, ln.ToLine = fi, ti
				fi++
				ti++
			}
			res = append(res, ln)
		}
	}
	return res
}

// mapLinesTo gives every distinct line a rune so that lines can be diffed
// as characters.
func mapLinesTo(lineMap map[string]rune, runeMap map[rune]string, text string) []rune {
	lines := strings.Split(text, "\n")
	res := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := lineMap[ln]
		if !ok {
			// stay clear of the surrogate range
			r = rune(0xE000 + len(lineMap))
			if r >= 0xF900 {
				r = rune(0x10000 + len(lineMap))
			}
			lineMap[ln] = r
			runeMap[r] = ln
		}
		res[i] = r
	}
	return res
}

// Changed reports whether lines hold any insertion or deletion.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}
