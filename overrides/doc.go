// Package overrides loads annotation files: mappings from leaf addresses to
// replacement values, given to the merge as overrides.
//
// An annotation file is a single mapping whose keys are addresses and whose
// values are strings, in YAML, JSON or TOML.
//
//	.server.port: "8080"
//	.replicas: "3"
package overrides
