package ir

import (
	"fmt"
)

// Document is the line model of one text.  See the package documentation.
type Document struct {
	nodes []*Node
	Roots []NodeID
	First NodeID

	tail  NodeID
	addrs map[NodeID]string
}

func NewDocument() *Document {
	return &Document{
		First: NoNode,
		tail:  NoNode,
		addrs: map[NodeID]string{},
	}
}

// Node returns the node with id, or nil if there is none.
func (d *Document) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil
	}
	return d.nodes[id]
}

// Len returns the number of live nodes.
func (d *Document) Len() int {
	n := 0
	for _, node := range d.nodes {
		if node != nil {
			n++
		}
	}
	return n
}

func (d *Document) add(n *Node) NodeID {
	id := NodeID(len(d.nodes))
	n.ID = id
	d.nodes = append(d.nodes, n)
	return id
}

// Append adds n to the arena and to the end of the output order.
func (d *Document) Append(n *Node) NodeID {
	id := d.add(n)
	if d.tail == NoNode {
		d.First = id
	} else {
		d.nodes[d.tail].Next = id
	}
	d.tail = id
	return id
}

// Attach makes id the last child of parent, or the last root node if
// parent is NoNode.
func (d *Document) Attach(parent, id NodeID) error {
	n := d.Node(id)
	if n == nil {
		return fmt.Errorf("%w: attach of missing node %d", errInternal, id)
	}
	if parent == NoNode {
		d.Roots = append(d.Roots, id)
		n.Parent = NoNode
		return nil
	}
	p := d.Node(parent)
	if p == nil {
		return fmt.Errorf("%w: attach to missing node %d", errInternal, parent)
	}
	switch p.Value.Kind {
	case EmptyValue:
		p.Value = Children([]NodeID{id})
	case ChildrenValue:
		p.Value.Children = append(p.Value.Children, id)
	default:
		return fmt.Errorf("%w: attach under scalar node %d", errInternal, parent)
	}
	n.Parent = parent
	return nil
}

// Order returns the ids of all nodes in output order.
func (d *Document) Order() []NodeID {
	var res []NodeID
	for id := d.First; id != NoNode && len(res) <= len(d.nodes); {
		n := d.Node(id)
		if n == nil {
			break
		}
		res = append(res, id)
		id = n.Next
	}
	return res
}

// VerifyOrder checks that the output order visits every live node exactly
// once.
func (d *Document) VerifyOrder() error {
	seen := make([]bool, len(d.nodes))
	count := 0
	for id := d.First; id != NoNode; {
		n := d.Node(id)
		if n == nil {
			return fmt.Errorf("%w: link to missing node %d", ErrBadOrder, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: node %d visited twice", ErrBadOrder, id)
		}
		seen[id] = true
		count++
		id = n.Next
	}
	if live := d.Len(); count != live {
		return fmt.Errorf("%w: visited %d of %d nodes", ErrBadOrder, count, live)
	}
	return nil
}

// LastDescendant returns the last node in output order belonging to the
// subtree of id, which is id itself if it has no children.
func (d *Document) LastDescendant(id NodeID) NodeID {
	for {
		n := d.Node(id)
		if n == nil || !n.Value.IsChildren() {
			return id
		}
		id = n.Value.Children[len(n.Value.Children)-1]
	}
}

// SubtreeRange returns the first and last node in output order of what is
// nested under id, comments and blank lines included.  Both are NoNode if
// nothing is nested.
func (d *Document) SubtreeRange(id NodeID) (NodeID, NodeID) {
	n := d.Node(id)
	if n == nil || !n.Value.IsChildren() {
		return NoNode, NoNode
	}
	return n.Next, d.LastDescendant(id)
}

// GroupRange returns the first and last node in output order covering the
// sibling run ids and everything nested under them.
func (d *Document) GroupRange(ids []NodeID) (NodeID, NodeID) {
	if len(ids) == 0 {
		return NoNode, NoNode
	}
	return ids[0], d.LastDescendant(ids[len(ids)-1])
}

// ReplaceRange replaces the nodes following prev up to and including last
// in output order by the already linked run first..newLast.  If last equals
// prev nothing is removed; if first is NoNode nothing is inserted.  Removed
// nodes are deleted from the arena.
func (d *Document) ReplaceRange(prev, last, first, newLast NodeID) error {
	p := d.Node(prev)
	if p == nil {
		return fmt.Errorf("%w: replace after missing node %d", errInternal, prev)
	}
	after := p.Next
	if last != prev {
		id := p.Next
		for {
			n := d.Node(id)
			if n == nil {
				return fmt.Errorf("%w: node %d not followed by %d", errInternal, prev, last)
			}
			next := n.Next
			d.remove(id)
			if id == last {
				after = next
				break
			}
			id = next
		}
	}
	end := prev
	if first != NoNode {
		tl := d.Node(newLast)
		if tl == nil {
			return fmt.Errorf("%w: insert of missing node %d", errInternal, newLast)
		}
		p.Next = first
		tl.Next = after
		end = newLast
	} else {
		p.Next = after
	}
	if after == NoNode {
		d.tail = end
	}
	return nil
}

func (d *Document) remove(id NodeID) {
	d.nodes[id] = nil
	delete(d.addrs, id)
}

// DropSubtree removes everything nested under id and leaves it with an
// empty value.
func (d *Document) DropSubtree(id NodeID) error {
	n := d.Node(id)
	if n == nil {
		return fmt.Errorf("%w: drop of missing node %d", errInternal, id)
	}
	if !n.Value.IsChildren() {
		return nil
	}
	if err := d.ReplaceRange(id, d.LastDescendant(id), NoNode, NoNode); err != nil {
		return err
	}
	n.Value = Empty()
	n.Modified = true
	return nil
}

// SetScalar gives id a scalar value, dropping anything nested under it.
func (d *Document) SetScalar(id NodeID, v string) error {
	if err := d.DropSubtree(id); err != nil {
		return err
	}
	n := d.nodes[id]
	n.Value = Scalar(v)
	n.Modified = true
	return nil
}

// SetEmpty gives id an empty value, dropping anything nested under it.
func (d *Document) SetEmpty(id NodeID) error {
	if err := d.DropSubtree(id); err != nil {
		return err
	}
	n := d.nodes[id]
	n.Value = Empty()
	n.Modified = true
	return nil
}

// CopyRange copies the nodes from..to of src, in output order, into d.
// Copies are linked to each other in the same order, but not to the rest
// of d.  Copied content nodes whose parent lies outside the range become
// children of parent; their ids are returned as tops.  Source nodes are
// never shared with d.
func (d *Document) CopyRange(src *Document, from, to, parent NodeID) (tops []NodeID, first, last NodeID, err error) {
	first, last = NoNode, NoNode
	ids := map[NodeID]NodeID{}
	var copied []NodeID
	for id := from; ; {
		sn := src.Node(id)
		if sn == nil {
			return nil, NoNode, NoNode, fmt.Errorf("%w: copy range %d..%d broken at %d", errInternal, from, to, id)
		}
		cn := sn.clone()
		cn.Line = 0
		cid := d.add(cn)
		ids[id] = cid
		copied = append(copied, id)
		if last != NoNode {
			d.nodes[last].Next = cid
		} else {
			first = cid
		}
		last = cid
		if id == to {
			break
		}
		id = sn.Next
	}
	for _, id := range copied {
		sn := src.nodes[id]
		if sn.Type != ContentType {
			continue
		}
		cn := d.nodes[ids[id]]
		if p, ok := ids[sn.Parent]; ok && sn.Parent != NoNode {
			cn.Parent = p
		} else {
			cn.Parent = parent
			tops = append(tops, cn.ID)
		}
		for i, c := range cn.Value.Children {
			cc, ok := ids[c]
			if !ok {
				return nil, NoNode, NoNode, fmt.Errorf("%w: child %d of %d outside copy range", errInternal, c, id)
			}
			cn.Value.Children[i] = cc
		}
	}
	return tops, first, last, nil
}

// Graft replaces whatever is nested under id by a copy of the range
// from..to of src.
func (d *Document) Graft(id NodeID, src *Document, from, to NodeID) error {
	if err := d.DropSubtree(id); err != nil {
		return err
	}
	n := d.nodes[id]
	n.Modified = true
	if from == NoNode {
		n.Value = Empty()
		return nil
	}
	tops, first, last, err := d.CopyRange(src, from, to, id)
	if err != nil {
		return err
	}
	if err := d.ReplaceRange(id, id, first, last); err != nil {
		return err
	}
	n.Value = Children(tops)
	return nil
}
