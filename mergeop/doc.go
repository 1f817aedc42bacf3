// Package mergeop provides the merge annotations which steer how a single
// target line is merged.
//
// # Overview
//
// Annotations are written at the start of a line's trailing comment:
//
//	image: <repo>    # [MERGE IGNORE] set by the pipeline
//	timeout: 30      # [MERGE PREFIX max-]
//	replicas: 1      # [MERGE FROM .deploy.replicas]
//	port: 0          # [MERGE INSTEAD .service.port]
//	resources:       # [MERGE SUPER]
//	- name: a        # [MERGE SUPER LIST]
//
// Several annotations may follow each other; everything after the last one
// is free comment text.  [Parse] turns a comment into a list of
// [Annotation] values and the remaining text, [Render] does the reverse.
//
// The merge itself adds two annotations to flag lines needing attention:
//
//   - [MERGE CHECK]: no source value was found, the template default is kept
//   - [MERGE FAIL]: no source value was found and the template has no usable
//     default
//
// # Related Packages
//
//   - github.com/signadot/confmerge/merge - The merge engine
//   - github.com/signadot/confmerge/ir - Nodes carrying annotations
package mergeop
