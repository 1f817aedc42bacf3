package ir

import (
	"slices"

	"github.com/signadot/confmerge/mergeop"
)

// NodeID identifies a node within its Document.
type NodeID int

// NoNode is the null NodeID.
const NoNode NodeID = -1

// Value is the value of a content node: nothing, a scalar, or the nodes
// nested under it.
type Value struct {
	Kind     ValueKind
	Scalar   string
	Children []NodeID
}

func Empty() Value {
	return Value{}
}

func Scalar(s string) Value {
	return Value{Kind: ScalarValue, Scalar: s}
}

func Children(ids []NodeID) Value {
	if len(ids) == 0 {
		return Value{}
	}
	return Value{Kind: ChildrenValue, Children: ids}
}

func (v Value) IsEmpty() bool    { return v.Kind == EmptyValue }
func (v Value) IsScalar() bool   { return v.Kind == ScalarValue }
func (v Value) IsChildren() bool { return v.Kind == ChildrenValue }

func (v Value) Clone() Value {
	return Value{Kind: v.Kind, Scalar: v.Scalar, Children: slices.Clone(v.Children)}
}

type Node struct {
	ID   NodeID
	Type Type

	// Indent is the number of spaces before the first non-space character.
	Indent int
	// Key is the mapping key of a content line.  Keys are never empty, so
	// a line without a key has Key == "".
	Key      string
	ListItem bool
	Value    Value

	// Comment is the free text of a trailing comment without the leading
	// '#' and without annotations.  For comment lines it is the whole line
	// after the indent, '#' included.
	Comment     string
	Annotations []mergeop.Annotation

	Parent NodeID
	Next   NodeID

	// Line is the 1-based line number in the parsed text, 0 for nodes
	// created afterwards.
	Line int
	// Raw is the original text of the node, block scalar continuation
	// lines included.
	Raw string
	// Modified is set once a node no longer matches Raw.
	Modified bool
}

func NewBlank() *Node {
	return &Node{Type: BlankType, Parent: NoNode, Next: NoNode}
}

func NewComment(indent int, text string) *Node {
	return &Node{Type: CommentType, Indent: indent, Comment: text, Parent: NoNode, Next: NoNode}
}

func NewContent(indent int, key string, v Value) *Node {
	return &Node{Type: ContentType, Indent: indent, Key: key, Value: v, Parent: NoNode, Next: NoNode}
}

func (n *Node) IsContent() bool { return n != nil && n.Type == ContentType }

func (n *Node) HasKey() bool { return n.Key != "" }

// CommentText returns the trailing comment as written: annotations followed
// by the free text.
func (n *Node) CommentText() string {
	if n.Type == CommentType {
		return n.Comment
	}
	return mergeop.Render(n.Annotations, n.Comment)
}

// SetAnnotations replaces the annotations of n.
func (n *Node) SetAnnotations(as []mergeop.Annotation) {
	n.Annotations = as
	n.Modified = true
}

// StripAnnotations removes all annotations except the given kinds.
func (n *Node) StripAnnotations(keep ...mergeop.Kind) {
	var res []mergeop.Annotation
	for _, a := range n.Annotations {
		if slices.Contains(keep, a.Kind) {
			res = append(res, a)
		}
	}
	if len(res) == len(n.Annotations) {
		return
	}
	n.SetAnnotations(res)
}

// Mark prepends a merge marker annotation.
func (n *Node) Mark(k mergeop.Kind) {
	n.SetAnnotations(append([]mergeop.Annotation{mergeop.New(k, "")}, n.Annotations...))
}

func (n *Node) SetComment(text string) {
	n.Comment = text
	n.Modified = true
}

func (n *Node) SetKey(key string) {
	n.Key = key
	n.Modified = true
}

// clone copies n without its tree and order links.
func (n *Node) clone() *Node {
	res := *n
	res.Value = n.Value.Clone()
	res.Annotations = slices.Clone(n.Annotations)
	res.ID = NoNode
	res.Parent = NoNode
	res.Next = NoNode
	return &res
}
