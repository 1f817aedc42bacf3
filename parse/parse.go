package parse

import (
	"strconv"
	"strings"

	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/mergeop"
	"github.com/signadot/confmerge/token"
)

// Parse builds the line model of d.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		opts:   pOpts,
		doc:    ir.NewDocument(),
		last:   ir.NoNode,
		block:  ir.NoNode,
		keyCol: map[ir.NodeID]int{},
	}
	for i, ln := range token.SplitLines(token.ExpandTabs(d, pOpts.tabWidth)) {
		if err := p.line(i+1, ln); err != nil {
			return nil, err
		}
	}
	p.endBlock()
	return p.doc, nil
}

type heldLine struct {
	text string
	line int
}

type parser struct {
	opts *parseOpts
	doc  *ir.Document

	// last is the most recently created content node.
	last ir.NodeID
	// keyCol is the column of the key of list items with a key.
	keyCol map[ir.NodeID]int

	// block is the node whose block scalar is being read.
	block       ir.NodeID
	blockIndent int
	held        []heldLine
}

func (p *parser) line(no int, ln string) error {
	if token.IsBlank(ln) {
		if p.block != ir.NoNode {
			// part of the block scalar only if it goes on afterwards
			p.held = append(p.held, heldLine{text: ln, line: no})
			return nil
		}
		p.blank(no, ln)
		return nil
	}
	indent, _ := token.Indent(ln)
	if p.block != ir.NoNode {
		if indent > p.blockIndent {
			p.extendBlock(ln)
			return nil
		}
		p.endBlock()
	}
	if ln[indent] == '#' {
		n := ir.NewComment(indent, ln[indent:])
		n.Line = no
		n.Raw = ln
		p.doc.Append(n)
		return nil
	}
	return p.content(no, ln, indent)
}

func (p *parser) blank(no int, ln string) {
	n := ir.NewBlank()
	n.Line = no
	n.Raw = ln
	p.doc.Append(n)
}

func (p *parser) extendBlock(ln string) {
	n := p.doc.Node(p.block)
	for _, h := range p.held {
		n.Value.Scalar += "\n" + h.text
		n.Raw += "\n" + h.text
	}
	p.held = p.held[:0]
	n.Value.Scalar += "\n" + ln
	n.Raw += "\n" + ln
}

func (p *parser) endBlock() {
	for _, h := range p.held {
		p.blank(h.line, h.text)
	}
	p.held = nil
	p.block = ir.NoNode
}

func (p *parser) content(no int, ln string, indent int) error {
	code, comment, _ := token.SplitComment(ln[indent:])
	n := ir.NewContent(indent, "", ir.Empty())
	n.Line = no
	n.Raw = ln
	if p.opts.annotations {
		as, text, err := mergeop.Parse(comment)
		if err != nil {
			return &LineErr{Err: err, Line: no, Text: ln}
		}
		n.Annotations = as
		n.Comment = text
	} else {
		n.Comment = comment
	}

	keyCol := indent
	if c := token.MappingColon(code); c != -1 {
		key := strings.TrimSpace(code[:c])
		if isDash(key) {
			n.ListItem = true
			key = strings.TrimSpace(key[1:])
			keyCol = indent + strings.Index(code, key)
		}
		if key == "" {
			return malformed(no, ln, "empty key")
		}
		n.Key = key
		if v := strings.TrimSpace(code[c+1:]); v != "" {
			n.Value = ir.Scalar(v)
		}
	} else {
		v := strings.TrimSpace(code)
		if isDash(v) {
			n.ListItem = true
			v = strings.TrimSpace(v[1:])
		}
		if v != "" {
			n.Value = ir.Scalar(v)
		}
	}

	parent := p.parentFor(indent, n.ListItem)
	if parent == ir.NoNode && !n.HasKey() && !n.ListItem {
		return malformed(no, ln, "value without key or list marker")
	}
	if pn := p.doc.Node(parent); pn != nil && pn.Value.IsScalar() {
		return malformed(no, ln, "nested under scalar value of line "+strconv.Itoa(pn.Line))
	}
	id := p.doc.Append(n)
	if err := p.doc.Attach(parent, id); err != nil {
		return err
	}
	if parent == ir.NoNode && !n.HasKey() && !p.doc.IsList(p.doc.Roots) {
		return malformed(no, ln, "root level list item after mapping")
	}
	if n.ListItem && n.HasKey() {
		p.keyCol[id] = keyCol
	}
	p.last = id
	if n.Value.IsScalar() && token.IsBlockScalar(n.Value.Scalar) {
		p.block = id
		p.blockIndent = indent
	}
	return nil
}

// parentFor walks up from the last content node to the closest node which
// can hold a line at indent.  A list item shares the indentation of its
// container, so a container at the same indent holds a list item, while a
// list item holds only deeper list items, or deeper lines past its key
// column when its own value is nested.
func (p *parser) parentFor(indent int, listItem bool) ir.NodeID {
	id := p.last
	for id != ir.NoNode {
		a := p.doc.Node(id)
		switch {
		case a.Indent < indent && (!a.ListItem || listItem):
			return id
		case a.Indent == indent && !a.ListItem && listItem:
			return id
		case a.ListItem && !listItem && a.HasKey() && !a.Value.IsScalar() && indent > p.keyCol[id]:
			return id
		}
		id = a.Parent
	}
	return ir.NoNode
}

func isDash(s string) bool {
	return s == "-" || strings.HasPrefix(s, "- ")
}
