package encode

import (
	"strings"

	"github.com/signadot/confmerge/ir"
)

// MustString returns the text of doc.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
