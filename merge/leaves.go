package merge

import (
	"log/slog"

	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/mergeop"
)

// Leaf is a unit of merging: an address and the target node holding it.
type Leaf struct {
	Address string
	Node    ir.NodeID
}

// Leaves returns the leaves of doc in document order.  A keyed line is a
// leaf if its value is a scalar or empty, if nothing keyed is nested under
// it, or if it is annotated SUPER.  A list of mappings whose first item is
// annotated SUPER LIST makes the line holding the list a leaf.  SUPER and
// SUPER LIST annotations are consumed.
func Leaves(doc *ir.Document, log *slog.Logger) []Leaf {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	x := &extractor{doc: doc, log: log}
	x.walk(doc.Roots)
	return x.res
}

// LeafMap indexes leaves by address.  For duplicate addresses the first
// leaf wins.
func LeafMap(leaves []Leaf) map[string]ir.NodeID {
	res := make(map[string]ir.NodeID, len(leaves))
	for _, l := range leaves {
		if _, ok := res[l.Address]; !ok {
			res[l.Address] = l.Node
		}
	}
	return res
}

type extractor struct {
	doc *ir.Document
	log *slog.Logger
	res []Leaf
}

func (x *extractor) emit(id ir.NodeID) {
	x.res = append(x.res, Leaf{Address: x.doc.Address(id), Node: id})
}

// walk reports whether ids hold any keyed line.
func (x *extractor) walk(ids []ir.NodeID) bool {
	keyed := false
	for _, id := range ids {
		n := x.doc.Node(id)
		if !n.IsContent() || !n.HasKey() {
			continue
		}
		keyed = true
		if mergeop.Has(n.Annotations, mergeop.SuperList) {
			// not consumed by the line holding the list
			x.log.Debug("ignoring misplaced annotation", "address", x.doc.Address(id), "annotation", mergeop.SuperList)
			n.SetAnnotations(mergeop.Without(n.Annotations, mergeop.SuperList))
		}
		switch {
		case mergeop.Has(n.Annotations, mergeop.Super):
			n.SetAnnotations(mergeop.Without(n.Annotations, mergeop.Super))
			x.emit(id)
		case !n.Value.IsChildren():
			x.emit(id)
		case x.superList(n):
			x.emit(id)
		case !x.walk(n.Value.Children):
			x.emit(id)
		}
	}
	return keyed
}

// superList consumes a SUPER LIST annotation on the first item of the list
// held by n.
func (x *extractor) superList(n *ir.Node) bool {
	kids := n.Value.Children
	if !x.doc.IsList(kids) {
		return false
	}
	first := x.doc.Node(kids[0])
	if !first.HasKey() || !mergeop.Has(first.Annotations, mergeop.SuperList) {
		return false
	}
	first.SetAnnotations(mergeop.Without(first.Annotations, mergeop.SuperList))
	return true
}
