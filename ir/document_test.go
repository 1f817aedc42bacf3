package ir_test

import (
	"errors"
	"testing"

	"github.com/signadot/confmerge/encode"
	"github.com/signadot/confmerge/ir"
)

func TestVerifyOrder(t *testing.T) {
	doc := mustParse(t, "a:\n  b: 1\n\n# c\nd: 2")
	if err := doc.VerifyOrder(); err != nil {
		t.Fatal(err)
	}
	doc.Node(atLine(t, doc, 2)).Next = ir.NoNode
	if err := doc.VerifyOrder(); !errors.Is(err, ir.ErrBadOrder) {
		t.Errorf("got %v, want %v", err, ir.ErrBadOrder)
	}
	doc = mustParse(t, "a: 1\nb: 2")
	doc.Node(atLine(t, doc, 2)).Next = atLine(t, doc, 1)
	if err := doc.VerifyOrder(); !errors.Is(err, ir.ErrBadOrder) {
		t.Errorf("got %v, want %v", err, ir.ErrBadOrder)
	}
}

func TestSetScalarDropsSubtree(t *testing.T) {
	doc := mustParse(t, "a:\n  b: 1\n  # c\n  c: 2\nd: 3")
	a := atLine(t, doc, 1)
	if err := doc.SetScalar(a, "x"); err != nil {
		t.Fatal(err)
	}
	if err := doc.VerifyOrder(); err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(doc), "a: x\nd: 3"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if doc.Len() != 2 {
		t.Errorf("got %d live nodes, want 2", doc.Len())
	}
}

func TestSetEmptyAtEnd(t *testing.T) {
	doc := mustParse(t, "d: 3\na:\n  b: 1")
	a := atLine(t, doc, 2)
	if err := doc.SetEmpty(a); err != nil {
		t.Fatal(err)
	}
	// the tail moves back to a
	doc.Append(ir.NewBlank())
	if err := doc.VerifyOrder(); err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(doc), "d: 3\na:\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestGraft(t *testing.T) {
	src := mustParse(t, "a:\n  b: 1\n  # note\n  c: 2\n")
	before := encode.MustString(src)
	dst := mustParse(t, "x: 1\na: <v>\ny: 2")
	da := atLine(t, dst, 2)
	from, to := src.SubtreeRange(atLine(t, src, 1))
	if err := dst.Graft(da, src, from, to); err != nil {
		t.Fatal(err)
	}
	if err := dst.VerifyOrder(); err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(dst), "x: 1\na:\n  b: 1\n  # note\n  c: 2\ny: 2"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := encode.MustString(src); got != before {
		t.Errorf("source changed to %q", got)
	}
	kids := dst.Node(da).Value.Children
	if len(kids) != 2 {
		t.Fatalf("got %d children", len(kids))
	}
	for _, k := range kids {
		if dst.Node(k).Parent != da {
			t.Errorf("child %d has parent %d", k, dst.Node(k).Parent)
		}
		if src.Node(k) == dst.Node(k) {
			t.Errorf("node %d shared with source", k)
		}
	}
	if got := dst.Address(kids[1]); got != ".a.c" {
		t.Errorf("got address %q", got)
	}
}

func TestGraftGroup(t *testing.T) {
	src := mustParse(t, "l:\n- name: n0\n  image: i0\n- name: n1\n  image: i1\n")
	dst := mustParse(t, "first:\nlast: 1\n")
	ids, err := src.Resolve(".l.1")
	if err != nil {
		t.Fatal(err)
	}
	from, to := src.GroupRange(ids)
	d := atLine(t, dst, 1)
	if err := dst.Graft(d, src, from, to); err != nil {
		t.Fatal(err)
	}
	if err := dst.VerifyOrder(); err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(dst), "first:\n- name: n1\n  image: i1\nlast: 1\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := addresses(dst, dst.Order()); len(got) != 4 || got[1] != ".first.0.name" || got[2] != ".first.0.image" {
		t.Errorf("got addresses %v", got)
	}
}

func TestCopyRangeKeepsNesting(t *testing.T) {
	src := mustParse(t, "a:\n  b:\n    c: 1\n  d: 2\n")
	dst := ir.NewDocument()
	from, to := src.SubtreeRange(atLine(t, src, 1))
	tops, first, last, err := dst.CopyRange(src, from, to, ir.NoNode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tops) != 2 {
		t.Fatalf("got %d top nodes, want 2", len(tops))
	}
	if dst.Node(first).Key != "b" || dst.Node(last).Key != "d" {
		t.Errorf("got range %q..%q", dst.Node(first).Key, dst.Node(last).Key)
	}
	b := dst.Node(tops[0])
	if len(b.Value.Children) != 1 || dst.Node(b.Value.Children[0]).Parent != b.ID {
		t.Errorf("nested node not relinked: %+v", b.Value)
	}
	if dst.Node(first).Line != 0 {
		t.Errorf("copied node keeps line %d", dst.Node(first).Line)
	}
}
