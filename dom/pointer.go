package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolvePointer navigates a slash-delimited pointer ("/path/to/node"),
// creating what is missing along the way: absent Struct keys become Null
// entries and Vector indexes grow the vector. A leading empty segment from
// an initial '/' is ignored. On a Vector node the segment must be a base-10
// non-negative index; anything else is a caller bug and panics.
func (n *Node) ResolvePointer(pointer string) *Node {
	cur := n
	for _, seg := range pointerSegments(pointer) {
		if cur.kind == VectorKind {
			i, err := pointerIndex(seg)
			if err != nil {
				panic(fmt.Sprintf("dom: invalid pointer %q: %v", pointer, err))
			}
			cur = cur.At(i)
			continue
		}
		cur = cur.Field(seg)
	}
	return cur
}

// LookupPointer resolves a pointer without ever mutating the tree. When a
// segment cannot be resolved — absent key, out-of-range or malformed
// index, leaf in the middle of the path — resolution stops and the shared
// empty node is returned.
func (n *Node) LookupPointer(pointer string) *Node {
	cur := n
	for _, seg := range pointerSegments(pointer) {
		switch cur.kind {
		case StructKind:
			c, ok := cur.obj[seg]
			if !ok {
				return emptyNode
			}
			cur = c
		case VectorKind:
			i, err := pointerIndex(seg)
			if err != nil || i >= len(cur.vec) {
				return emptyNode
			}
			cur = cur.vec[i]
		default:
			return emptyNode
		}
	}
	return cur
}

func pointerSegments(pointer string) []string {
	if pointer == "" {
		return nil
	}
	segs := strings.Split(pointer, "/")
	if segs[0] == "" {
		segs = segs[1:]
	}
	return segs
}

func pointerIndex(seg string) (int, error) {
	if seg == "" {
		return 0, fmt.Errorf("empty index segment")
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, fmt.Errorf("non-numeric index %q", seg)
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", seg, err)
	}
	return i, nil
}
