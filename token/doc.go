// Package token provides the lexical helpers used to split a configuration
// line into its code and comment parts.
//
// The scanner is line oriented: [Indent] measures a line, [CommentStart]
// finds the first '#' which is not inside a quoted substring and
// [MappingColon] finds the ':' separating a key from its value.
// [ExpandTabs] normalises tabs before any of these run.
package token
