package libdiff

import (
	"fmt"
	"io"
)

// Write writes the changed lines with up to context unchanged lines around
// them.  Each run of lines is headed by the line numbers where it starts.
// color, if not nil, decorates a whole output line by its Op.
func Write(w io.Writer, lines []Line, context int, color func(Op, string) string) error {
	show := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			show[j] = true
		}
	}
	for i, ln := range lines {
		if !show[i] {
			continue
		}
		if i == 0 || !show[i-1] {
			if _, err := fmt.Fprintf(w, "@@ %d,%d @@\n", fromStart(lines, i), toStart(lines, i)); err != nil {
				return err
			}
		}
		out := ln.Op.String() + ln.Text
		if color != nil {
			out = color(ln.Op, out)
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// fromStart returns the line number in the old text at which lines[i:]
// begins.
func fromStart(lines []Line, i int) int {
	n := 1
	for _, ln := range lines[:i] {
		if ln.Op != Insert {
			n++
		}
	}
	return n
}

func toStart(lines []Line, i int) int {
	n := 1
	for _, ln := range lines[:i] {
		if ln.Op != Delete {
			n++
		}
	}
	return n
}
