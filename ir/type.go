package ir

type Type int

const (
	BlankType Type = iota
	CommentType
	ContentType
)

func (t Type) String() string {
	switch t {
	case BlankType:
		return "blank"
	case CommentType:
		return "comment"
	case ContentType:
		return "content"
	default:
		return "<unknown type>"
	}
}

type ValueKind int

const (
	EmptyValue ValueKind = iota
	ScalarValue
	ChildrenValue
)

func (k ValueKind) String() string {
	switch k {
	case EmptyValue:
		return "empty"
	case ScalarValue:
		return "scalar"
	case ChildrenValue:
		return "children"
	default:
		return "<unknown value>"
	}
}
