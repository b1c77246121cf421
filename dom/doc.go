// Package dom defines the document tree at the center of this module: a
// self-describing variant node type used to represent JSON-like
// configuration documents.
//
// # Node structure
//
// A Node is a tagged union over seven kinds:
//
//   - NullKind: absence of a value (and, inside merges, deletion intent)
//   - BoolKind, IntegerKind, FloatKind, StringKind: leaves; Integer and
//     Float are distinct kinds so integer-valued data round-trips exactly
//   - VectorKind: ordered list of child nodes
//   - StructKind: keyed mapping of child nodes with unique keys
//
// Each node additionally carries two sidecar attributes excluded from
// equality: Meta, a free-form provenance string, and marker flags, of
// which only "override" (OverrideFlag) changes merge behavior.
//
// # Accessors
//
// Accessors come in two families with deliberately different failure
// behavior:
//
//   - Mutating accessors (Bool, Integer, Float, String, Vector, Struct,
//     Field, At, ResolvePointer) coerce the node to the requested kind,
//     discarding content on kind change, and auto-create missing
//     children. This is a documented destructive side effect.
//   - Read-only accessors (BoolValue, IntegerValue, FloatValue,
//     StringValue, VectorValue, StructValue, Index) panic on kind
//     mismatch. A panic here indicates a caller bug; untrusted input
//     never reaches these accessors if callers validate first or use the
//     mutating forms.
//
// Non-creating lookups (Lookup, LookupPointer) return the shared node
// from Empty() to signal absence; callers must not mutate it.
//
// # Pointers
//
// Pointer syntax is "/segment/segment/...". Each segment is a Struct key
// or, when the current node is a Vector, a base-10 non-negative index. An
// empty leading segment from an initial '/' is ignored.
//
// # Ownership and concurrency
//
// Trees are plain owned data with no internal synchronization. Compose
// documents by moving or cloning whole subtrees, never by aliasing.
// Concurrent mutation of one tree is undefined; share resolved documents
// read-only.
//
// # Related packages
//
//   - github.com/jeyms233/vcmi - merge/intersect/difference algebra
//   - github.com/jeyms233/vcmi/parse - text to dom.Node
//   - github.com/jeyms233/vcmi/encode - dom.Node to JSON text
//   - github.com/jeyms233/vcmi/convert - typed extraction
//   - github.com/jeyms233/vcmi/schema - validation and defaults
package dom
