package dom

import "fmt"

// Kind identifies the variant held by a Node. It is the single source of
// truth for which accessors are valid on the node.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntegerKind
	FloatKind
	StringKind
	VectorKind
	StructKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "Null",
		BoolKind:    "Bool",
		IntegerKind: "Integer",
		FloatKind:   "Float",
		StringKind:  "String",
		VectorKind:  "Vector",
		StructKind:  "Struct",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Bool":    BoolKind,
		"Integer": IntegerKind,
		"Float":   FloatKind,
		"String":  StringKind,
		"Vector":  VectorKind,
		"Struct":  StructKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntegerKind,
		FloatKind,
		StringKind,
		VectorKind,
		StructKind,
	}
}

// IsLeaf reports whether nodes of this kind never have children.
func (k Kind) IsLeaf() bool {
	switch k {
	case VectorKind, StructKind:
		return false
	default:
		return true
	}
}
