// Package parse converts configuration text into an [ir.Document].
//
// Parsing is line based.  Each physical line becomes one node: a blank
// line, a comment line or a content line holding an optional key, a value
// and a trailing comment.  Nesting is derived from indentation, where a list
// item's dash counts as part of its container's indentation:
//
//	a:          # root
//	- b: 1      # child of a, list item 0
//	  c: 2      # child of a, still list item 0
//	  d:        # child of a
//	    e: 3    # child of d
//
// Block scalars introduced by '|' or '>' extend over all following lines
// which are indented more than the line introducing them.
//
// Leading "[MERGE ...]" markers of trailing comments are parsed into
// annotations, see package mergeop.
package parse
