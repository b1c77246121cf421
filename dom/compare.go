package dom

import (
	"cmp"
	"strings"
)

// Equal reports structural equality: kind and payload, recursively.
// Meta and flags are excluded. Integer and Float payloads are distinct
// kinds and never compare equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.boolV == b.boolV
	case IntegerKind:
		return a.intV == b.intV
	case FloatKind:
		return a.floatV == b.floatV
	case StringKind:
		return a.strV == b.strV
	case VectorKind:
		if len(a.vec) != len(b.vec) {
			return false
		}
		for i := range a.vec {
			if !Equal(a.vec[i], b.vec[i]) {
				return false
			}
		}
		return true
	case StructKind:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes in a total order.
// The result is 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.kind)
	rankB := rank(b.kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.boolV == b.boolV {
			return 0
		}
		if !a.boolV {
			return -1
		}
		return 1
	case IntegerKind:
		return cmp.Compare(a.intV, b.intV)
	case FloatKind:
		return cmp.Compare(a.floatV, b.floatV)
	case StringKind:
		return strings.Compare(a.strV, b.strV)
	case VectorKind:
		return compareVectors(a, b)
	case StructKind:
		return compareStructs(a, b)
	}
	return 0
}

// rank orders kinds: Null < Bool < Integer < Float < String < Vector < Struct.
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case IntegerKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case VectorKind:
		return 5
	case StructKind:
		return 6
	}
	return 100
}

func compareVectors(a, b *Node) int {
	lenA := len(a.vec)
	lenB := len(b.vec)
	for i := range min(lenA, lenB) {
		if c := Compare(a.vec[i], b.vec[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareStructs(a, b *Node) int {
	keysA := a.Keys()
	keysB := b.Keys()
	for i := range min(len(keysA), len(keysB)) {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.obj[keysA[i]], b.obj[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
