package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Address returns the address of the content node id, computing and
// caching the addresses of its ancestors as needed.
func (d *Document) Address(id NodeID) string {
	if a, ok := d.addrs[id]; ok {
		return a
	}
	n := d.Node(id)
	if n == nil {
		return ""
	}
	a := ""
	if n.Parent != NoNode {
		a = d.Address(n.Parent)
	}
	if i := d.listIndex(n.Parent, id); i >= 0 {
		a += "." + strconv.Itoa(i)
	}
	if n.HasKey() {
		a += "." + n.Key
	}
	d.addrs[id] = a
	return a
}

// ResetAddresses empties the address cache.
func (d *Document) ResetAddresses() {
	clear(d.addrs)
}

// IsList reports whether the sibling run ids forms a list, which is the
// case when its first node is a list item.
func (d *Document) IsList(ids []NodeID) bool {
	if len(ids) == 0 {
		return false
	}
	n := d.Node(ids[0])
	return n != nil && n.ListItem
}

// Siblings returns the children of parent, or the root nodes if parent is
// NoNode.
func (d *Document) Siblings(parent NodeID) []NodeID {
	if parent == NoNode {
		return d.Roots
	}
	p := d.Node(parent)
	if p == nil || !p.Value.IsChildren() {
		return nil
	}
	return p.Value.Children
}

// listIndex returns the index of id in the list held by parent, counting
// list items up to and including id, or -1 if parent does not hold a list.
// Root level lists are indexed like nested ones.
func (d *Document) listIndex(parent, id NodeID) int {
	sibs := d.Siblings(parent)
	if !d.IsList(sibs) {
		return -1
	}
	i := -1
	for _, c := range sibs {
		if d.nodes[c].ListItem {
			i++
		}
		if c == id {
			break
		}
	}
	return i
}

// NormalizeAddress adds the optional leading dot.
func NormalizeAddress(addr string) string {
	if strings.HasPrefix(addr, ".") {
		return addr
	}
	return "." + addr
}

// AddressParent drops the last segment of addr.  The parent of a root
// level address is "".
func AddressParent(addr string) string {
	i := strings.LastIndexByte(addr, '.')
	if i == -1 {
		return ""
	}
	return addr[:i]
}

// Resolve returns the node at addr.  If addr names an element of a list of
// mappings, the sibling nodes forming that element are returned.
func (d *Document) Resolve(addr string) ([]NodeID, error) {
	ids, _, err := d.Lookup(addr)
	return ids, err
}

// Lookup is Resolve which also reports whether the result is a list
// element group rather than the node at addr.  A group may hold a single
// node, when the element has one key.
func (d *Document) Lookup(addr string) ([]NodeID, bool, error) {
	return d.lookupIn(addr, d.Roots)
}

// ResolveIn is Resolve restricted to the sibling run within and what is
// nested under it.
func (d *Document) ResolveIn(addr string, within []NodeID) ([]NodeID, error) {
	ids, _, err := d.lookupIn(addr, within)
	return ids, err
}

func (d *Document) lookupIn(addr string, within []NodeID) ([]NodeID, bool, error) {
	addr = NormalizeAddress(addr)
	res, group, ok := d.resolve(addr, within)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrAddressNotFound, addr)
	}
	return res, group, nil
}

func (d *Document) resolve(addr string, within []NodeID) ([]NodeID, bool, bool) {
	for i, id := range within {
		n := d.Node(id)
		if !n.IsContent() {
			continue
		}
		a := d.Address(id)
		switch {
		case a == addr:
			return []NodeID{id}, false, true
		case n.Value.IsChildren() && isPrefix(a, addr):
			return d.resolve(addr, n.Value.Children)
		case isPrefix(addr, a):
			return d.group(addr, within[i:]), true, true
		}
	}
	return nil, false, false
}

// group returns the leading run of ids whose addresses lie under prefix.
func (d *Document) group(prefix string, ids []NodeID) []NodeID {
	var res []NodeID
	for _, id := range ids {
		if !isPrefix(prefix, d.Address(id)) {
			break
		}
		res = append(res, id)
	}
	return res
}

// isPrefix reports whether p is a strict dotted prefix of a.
func isPrefix(p, a string) bool {
	return len(a) > len(p) && strings.HasPrefix(a, p) && a[len(p)] == '.'
}
