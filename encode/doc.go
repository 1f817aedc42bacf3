// Package encode writes an [ir.Document] back to text.
//
// Lines are written in the document's output order.  Lines which were not
// modified since parsing are written exactly as read; modified content
// lines are written in a canonical form:
//
//	<indent>[- ][key:][ value][ # comment]
//
// Values nested under a line are written by their own lines.  Lines copied
// in from another document keep that document's indentation.
//
// # Usage
//
//	err := encode.Encode(doc, os.Stdout)
//
//	// with colored merge markers on a terminal
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
package encode
