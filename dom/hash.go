package dom

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal nodes hash equal for the process lifetime.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node. Nodes that are Equal
// hash to the same value within a process. Meta and flags are excluded,
// matching Equal. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("dom: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.kind))

	switch n.kind {
	case NullKind:
	case BoolKind:
		if n.boolV {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.intV))
		h.Write(b[:])
	case FloatKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.floatV))
		h.Write(b[:])
	case StringKind:
		h.WriteString(n.strV)
	case VectorKind:
		var b [8]byte
		for _, c := range n.vec {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	case StructKind:
		var b [8]byte
		for _, k := range n.Keys() {
			h.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], n.obj[k].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
