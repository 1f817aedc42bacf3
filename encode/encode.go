package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/mergeop"
	"github.com/signadot/confmerge/token"
)

type EncState struct {
	canonical bool
	Color     func(ColorAttr, string) string
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(attr, s)
}

// Encode writes doc to w.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	return newEncState(opts).write(doc, doc.Order(), w)
}

// EncodeRange writes the lines from..to of doc, in output order, to w.
func EncodeRange(doc *ir.Document, from, to ir.NodeID, w io.Writer, opts ...EncodeOption) error {
	var ids []ir.NodeID
	for id := from; ; {
		n := doc.Node(id)
		if n == nil {
			return fmt.Errorf("no line %d in range %d..%d", id, from, to)
		}
		ids = append(ids, id)
		if id == to {
			break
		}
		id = n.Next
	}
	return newEncState(opts).write(doc, ids, w)
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) write(doc *ir.Document, ids []ir.NodeID, w io.Writer) error {
	for i, id := range ids {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, es.line(doc.Node(id))); err != nil {
			return fmt.Errorf("error writing line %d: %w", i+1, err)
		}
	}
	return nil
}

func (es *EncState) line(n *ir.Node) string {
	switch n.Type {
	case ir.BlankType:
		if n.Modified {
			return ""
		}
		return n.Raw
	case ir.CommentType:
		if n.Modified || n.Raw == "" {
			return strings.Repeat(" ", n.Indent) + es.color(CommentColor, n.Comment)
		}
		return es.rawComment(n.Raw)
	}
	if n.Modified || es.canonical || n.Raw == "" {
		return es.content(n)
	}
	return es.rawContent(n.Raw)
}

func (es *EncState) rawComment(raw string) string {
	if es.Color == nil {
		return raw
	}
	i, _ := token.Indent(raw)
	return raw[:i] + es.color(CommentColor, raw[i:])
}

func (es *EncState) rawContent(raw string) string {
	if es.Color == nil {
		return raw
	}
	first, rest, multi := strings.Cut(raw, "\n")
	i := token.CommentStart(first)
	if i == -1 {
		return raw
	}
	res := first[:i] + es.color(CommentColor, first[i:])
	if multi {
		res += "\n" + rest
	}
	return res
}

// Line returns the canonical form of a content node.
func Line(n *ir.Node) string {
	es := &EncState{}
	return es.content(n)
}

func (es *EncState) content(n *ir.Node) string {
	var parts []string
	if n.ListItem {
		parts = append(parts, es.color(SepColor, "-"))
	}
	if n.HasKey() {
		parts = append(parts, es.color(KeyColor, n.Key)+es.color(SepColor, ":"))
	}
	// a block scalar's comment belongs on its header line
	var cont string
	if n.Value.IsScalar() {
		v, rest, multi := strings.Cut(n.Value.Scalar, "\n")
		if multi {
			cont = "\n" + rest
		}
		parts = append(parts, es.color(ValueColor, v))
	}
	if c := es.comment(n); c != "" {
		parts = append(parts, es.color(CommentColor, "#")+" "+c)
	}
	return strings.Repeat(" ", n.Indent) + strings.Join(parts, " ") + cont
}

func (es *EncState) comment(n *ir.Node) string {
	if es.Color == nil {
		return n.CommentText()
	}
	var parts []string
	for _, a := range n.Annotations {
		attr := AnnotationColor
		switch a.Kind {
		case mergeop.Fail:
			attr = FailColor
		case mergeop.Check:
			attr = CheckColor
		}
		parts = append(parts, es.color(attr, a.String()))
	}
	if n.Comment != "" {
		parts = append(parts, es.color(CommentColor, n.Comment))
	}
	return strings.Join(parts, " ")
}
