package mergeop

import (
	"fmt"
	"strings"
)

const (
	openMark  = "[MERGE"
	closeMark = "]"
)

// Annotation is one parsed "[MERGE ...]" directive.
type Annotation struct {
	Kind Kind
	// Arg is the address of FROM and INSTEAD, the text of PREFIX and the
	// raw body of an annotation with an unknown kind.
	Arg string
}

func New(k Kind, arg string) Annotation {
	return Annotation{Kind: k, Arg: arg}
}

func (a Annotation) String() string {
	switch {
	case a.Kind == Unknown:
		if a.Arg == "" {
			return openMark + closeMark
		}
		return openMark + " " + a.Arg + closeMark
	case a.Kind.HasArg():
		return openMark + " " + a.Kind.String() + " " + a.Arg + closeMark
	default:
		return openMark + " " + a.Kind.String() + closeMark
	}
}

// Parse splits a comment into its leading annotations and the remaining
// free text.  A comment which does not start with "[MERGE" has no
// annotations.  An annotation without a closing "]" is an error.
func Parse(comment string) ([]Annotation, string, error) {
	var res []Annotation
	s := strings.TrimSpace(comment)
	for strings.HasPrefix(s, openMark) {
		end := strings.Index(s, closeMark)
		if end == -1 {
			return nil, "", fmt.Errorf("%w: unterminated %q", ErrAnnotationSyntax, s)
		}
		a, err := parseBody(s[len(openMark):end])
		if err != nil {
			return nil, "", err
		}
		res = append(res, a)
		s = strings.TrimSpace(s[end+len(closeMark):])
	}
	return res, s, nil
}

func parseBody(body string) (Annotation, error) {
	// the body is " KIND[ arg]"; arguments keep inner spacing
	b := strings.TrimPrefix(body, " ")
	word, arg, hasArg := strings.Cut(b, " ")
	switch name(word) {
	case ignoreName:
		return New(Ignore, ""), nil
	case checkName:
		return New(Check, ""), nil
	case failName:
		return New(Fail, ""), nil
	case superName:
		if !hasArg {
			return New(Super, ""), nil
		}
		if strings.TrimSpace(arg) == "LIST" {
			return New(SuperList, ""), nil
		}
	case fromName, insteadName:
		addr := strings.TrimSpace(arg)
		if addr == "" {
			return Annotation{}, fmt.Errorf("%w: %s requires an address", ErrAnnotationSyntax, word)
		}
		k := From
		if name(word) == insteadName {
			k = Instead
		}
		return New(k, addr), nil
	case prefixName:
		return New(Prefix, arg), nil
	}
	return New(Unknown, strings.TrimSpace(body)), nil
}

// Render is the inverse of Parse: it joins annotations and free text into
// comment text.
func Render(as []Annotation, text string) string {
	parts := make([]string, 0, len(as)+1)
	for _, a := range as {
		parts = append(parts, a.String())
	}
	if text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// Find returns the first annotation of kind k.
func Find(as []Annotation, k Kind) (Annotation, bool) {
	for _, a := range as {
		if a.Kind == k {
			return a, true
		}
	}
	return Annotation{}, false
}

func Has(as []Annotation, k Kind) bool {
	_, ok := Find(as, k)
	return ok
}

// Without returns as with all annotations of the given kinds removed.
func Without(as []Annotation, ks ...Kind) []Annotation {
	var res []Annotation
outer:
	for _, a := range as {
		for _, k := range ks {
			if a.Kind == k {
				continue outer
			}
		}
		res = append(res, a)
	}
	return res
}
