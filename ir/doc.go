// Package ir provides the line model of a configuration document.
//
// # Overview
//
// A [Document] holds one [Node] per physical line of its text.  Nodes live
// in an arena and refer to each other by [NodeID].  Two independent
// structures are kept over the arena:
//
//   - the tree: every content node owns the ordered ids of its children
//     (its [Value] is Children), and root level nodes are listed in
//     [Document.Roots].  Parent ids are back references only.
//   - the output order: [Document.First] and the Next field of each node
//     chain all lines in the order they are written.  Comment and blank
//     lines only appear here.
//
// Transformations which move lines around replace a contiguous range of
// the output order with another one (see [Document.ReplaceRange]), so the
// tree is never corrupted by re-linking.  [Document.VerifyOrder] checks that
// the output order visits every live node exactly once.
//
// # Addresses
//
// Every content node has an address such as ".a.1.c": the keys on the way
// from the root, with the zero based position among list items inserted
// for nodes in a list.  Indices are derived, never stored.  [Document.Address]
// caches addresses per node; the cache belongs to one snapshot of the tree
// and must be reset with [Document.ResetAddresses] after renaming a key.
//
// [Document.Resolve] finds the node for an address.  An address naming one
// element of a list of mappings yields the run of sibling nodes forming that
// element.
//
// # Formatting
//
// Nodes keep their original text in Raw.  Nodes which are not Modified are
// written back verbatim, see package encode.
package ir
