// Package dom implements the lazy, cycle-safe materialization of reader
// entries into a traversable node graph (spec.md §4.5).
//
// Grounded on the teacher's internal/index/hnsw/node.go and hnsw.go: the
// insert-if-absent arena keyed by a stable identifier (there, idToIndex
// map[string]uint32; here, NodeKey -> *Node), generalized from a vector
// index's node table to the reader's type-erased entity graph.
package dom

import "fmt"

// SortKind identifies which family a NodeKey's tag belongs to (spec.md
// §4.5: "sort_kind ∈ {Expr, Decl, Type, Name, Scope, Sentence, Chart,
// Syntax, Stmt}").
type SortKind uint8

const (
	KindExpr SortKind = iota
	KindDecl
	KindType
	KindName
	KindScope
	KindSentence
	KindChart
	KindSyntax
	KindStmt
)

func (k SortKind) String() string {
	switch k {
	case KindExpr:
		return "expr"
	case KindDecl:
		return "decl"
	case KindType:
		return "type"
	case KindName:
		return "name"
	case KindScope:
		return "scope"
	case KindSentence:
		return "sentence"
	case KindChart:
		return "chart"
	case KindSyntax:
		return "syntax"
	case KindStmt:
		return "stmt"
	default:
		return "unknown"
	}
}

// NodeKey is the type-erased index spec.md §4.5 keys the node arena on: two
// keys compare equal iff all three components are equal.
type NodeKey struct {
	Kind     SortKind
	SortTag  uint32
	Position uint32
}

func (k NodeKey) String() string {
	return fmt.Sprintf("%s-%d-%d", k.Kind, k.SortTag, k.Position)
}

// Node is one materialized entity: an ordered, append-only property map
// plus its outgoing edges. The arena owns every Node; child pointers remain
// stable for the loader's lifetime (spec.md §4.5).
type Node struct {
	Key        NodeKey
	ID         string
	propKeys   []string
	propValues map[string]string
	Children   []*Node
}

// SetProperty appends or overwrites a named property, preserving insertion
// order for properties set for the first time (spec.md's "ordered map").
func (n *Node) SetProperty(key, value string) {
	if n.propValues == nil {
		n.propValues = make(map[string]string)
	}
	if _, exists := n.propValues[key]; !exists {
		n.propKeys = append(n.propKeys, key)
	}
	n.propValues[key] = value
}

// Property returns a previously set property and whether it was set.
func (n *Node) Property(key string) (string, bool) {
	v, ok := n.propValues[key]
	return v, ok
}

// Properties returns the node's properties in the order they were first
// set, as parallel slices.
func (n *Node) Properties() (keys []string, values []string) {
	keys = append(keys, n.propKeys...)
	for _, k := range keys {
		values = append(values, n.propValues[k])
	}
	return keys, values
}

// AddChild appends an outgoing edge.
func (n *Node) AddChild(c *Node) { n.Children = append(n.Children, c) }
