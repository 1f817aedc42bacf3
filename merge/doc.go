// Package merge carries the values of a previous configuration over into a
// new template.
//
// # Overview
//
// [Merge] takes a source document holding previously chosen values and a
// target document, the template, and changes the target in place: every
// leaf of the target (see [Leaves]) receives the value found at the same
// address in the source.  Lines of the target which are not leaves, and all
// comments and blank lines, stay as they are.
//
// Annotations in the target's trailing comments change how a leaf is
// merged (see package mergeop):
//
//   - IGNORE: keep the target's value, do not look at the source
//   - FROM addr: take the value from addr in the source
//   - INSTEAD addr: take key and value from addr in the source; a missing
//     addr is always an error
//   - PREFIX text: prepend text to a scalar value taken from the source
//   - SUPER: merge a nested mapping as a whole
//   - SUPER LIST: on the first item of a list of mappings, merge the whole
//     list.  The list must be held by a key: on a root level list the
//     annotation is dropped and the elements are merged one by one.
//
// Leaves without a source value are reported.  They are errors when the
// target has no usable default (no value, or a placeholder starting with
// '<'), and warnings otherwise.  Reported lines are flagged in the output
// with "[MERGE FAIL]" or "[MERGE CHECK]".
//
// The source document is never modified: nested values are copied, not
// shared.
package merge
