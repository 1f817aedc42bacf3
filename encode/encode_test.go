package encode_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/confmerge/encode"
	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/mergeop"
	"github.com/signadot/confmerge/parse"
)

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestModifiedLines(t *testing.T) {
	doc := mustParse(t, "a:   1   # note\nb:\n  - x\nc:  3\n")
	ids := doc.Order()
	if err := doc.SetScalar(ids[0], "2"); err != nil {
		t.Fatal(err)
	}
	doc.Node(ids[1]).Mark(mergeop.Check)
	want := "a: 2 # note\nb: # [MERGE CHECK]\n  - x\nc:  3\n"
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestCanonical(t *testing.T) {
	doc := mustParse(t, "a:   1   # note\nl:\n  -   x\n  # c\n")
	want := "a: 1 # note\nl:\n  - x\n  # c\n"
	if got := encode.MustString(doc, encode.EncodeCanonical(true)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		n    *ir.Node
		want string
	}{
		{
			name: "key value",
			n:    ir.NewContent(2, "k", ir.Scalar("v")),
			want: "  k: v",
		},
		{
			name: "empty",
			n:    ir.NewContent(0, "k", ir.Empty()),
			want: "k:",
		},
		{
			name: "list item",
			n: &ir.Node{
				Type:        ir.ContentType,
				Indent:      4,
				Key:         "k",
				ListItem:    true,
				Value:       ir.Scalar("v"),
				Annotations: []mergeop.Annotation{mergeop.New(mergeop.Ignore, "")},
				Comment:     "c",
			},
			want: "    - k: v # [MERGE IGNORE] c",
		},
		{
			name: "block scalar",
			n: &ir.Node{
				Type:    ir.ContentType,
				Key:     "s",
				Value:   ir.Scalar("|\n  a\n  b"),
				Comment: "c",
			},
			want: "s: | # c\n  a\n  b",
		},
		{
			name: "scalar item",
			n:    &ir.Node{Type: ir.ContentType, ListItem: true, Value: ir.Scalar("x")},
			want: "- x",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encode.Line(tc.n); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func tagColors() *encode.Colors {
	tag := func(name string) func(string, ...any) string {
		return func(f string, args ...any) string {
			return "<" + name + ">" + fmt.Sprintf(f, args...) + "</" + name + ">"
		}
	}
	return &encode.Colors{
		Default: fmt.Sprintf,
		Map: map[encode.ColorAttr]func(string, ...any) string{
			encode.CommentColor: tag("c"),
			encode.KeyColor:     tag("k"),
			encode.FailColor:    tag("f"),
		},
	}
}

func TestColors(t *testing.T) {
	doc := mustParse(t, "# top\na: 1 # x\nb: <v>\n")
	ids := doc.Order()
	doc.Node(ids[2]).Mark(mergeop.Fail)
	got := encode.MustString(doc, encode.EncodeColors(tagColors()))
	want := strings.Join([]string{
		"<c># top</c>",
		"a: 1 <c># x</c>",
		"<k>b</k>: <v> <c>#</c> <f>[MERGE FAIL]</f>",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNewColors(t *testing.T) {
	c := encode.NewColors()
	for _, attr := range []encode.ColorAttr{encode.CommentColor, encode.CheckColor, encode.FailColor} {
		if got := c.Color(attr, "x"); !strings.Contains(got, "x") {
			t.Errorf("attr %d: got %q", attr, got)
		}
	}
}

func TestEncodeRange(t *testing.T) {
	doc := mustParse(t, "a: 1\nb:\n  c: 2\n  # d\n  e: 3\nf: 4\n")
	ids, err := doc.Resolve(".b")
	if err != nil {
		t.Fatal(err)
	}
	from, to := doc.GroupRange(ids)
	buf := &strings.Builder{}
	if err := encode.EncodeRange(doc, from, to, buf); err != nil {
		t.Fatal(err)
	}
	if want := "b:\n  c: 2\n  # d\n  e: 3"; buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
