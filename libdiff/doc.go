// Package libdiff computes line diffs between two versions of a document,
// used to show what a merge changed in a template.
//
// # Usage
//
//	lines := libdiff.Lines(template, merged)
//	if libdiff.Changed(lines) {
//		libdiff.Write(os.Stdout, lines, 2, nil)
//	}
package libdiff
