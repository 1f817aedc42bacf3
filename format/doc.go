// Package format names the encodings accepted for annotation override files.
//
// # Usage
//
//	f, err := format.ParseFormat("toml")
//
//	// or pick one from a file name
//	f, err := format.FromPath("annotations.yml")
//
// # Related Packages
//
//   - github.com/signadot/confmerge/overrides - Load annotation files
package format
