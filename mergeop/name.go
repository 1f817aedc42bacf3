package mergeop

// Kind identifies a merge annotation.
type Kind int

const (
	Unknown Kind = iota
	Ignore
	From
	Instead
	Prefix
	Super
	SuperList
	Check
	Fail
)

type name string

const (
	ignoreName    name = "IGNORE"
	fromName      name = "FROM"
	insteadName   name = "INSTEAD"
	prefixName    name = "PREFIX"
	superName     name = "SUPER"
	superListName name = "SUPER LIST"
	checkName     name = "CHECK"
	failName      name = "FAIL"
)

var kindNames = map[Kind]name{
	Ignore:    ignoreName,
	From:      fromName,
	Instead:   insteadName,
	Prefix:    prefixName,
	Super:     superName,
	SuperList: superListName,
	Check:     checkName,
	Fail:      failName,
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return string(n)
	}
	return "UNKNOWN"
}

// HasArg reports whether annotations of kind k carry an argument.
func (k Kind) HasArg() bool {
	switch k {
	case From, Instead, Prefix:
		return true
	}
	return false
}

// IsMarker reports whether k is added by the merge to flag a result.
func (k Kind) IsMarker() bool {
	return k == Check || k == Fail
}
