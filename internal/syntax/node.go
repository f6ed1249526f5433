// Package syntax defines the minimal read-only tree capability the lint
// rules consume. Keeping the rules behind this interface avoids compile-time
// coupling to a concrete grammar binding and lets tests build trees by hand.
package syntax

// Point is a 0-based row/column position in the source text.
type Point struct {
	Row    int
	Column int
}

// Node is a single node of a parsed syntax tree.
type Node interface {
	// Kind returns the grammar's label for this node, e.g. "import_declaration".
	Kind() string

	// StartByte and EndByte delimit the half-open byte range [start, end)
	// the node spans in the source text.
	StartByte() int
	EndByte() int

	// StartPoint returns the 0-based position of the node's first byte.
	StartPoint() Point

	// ChildCount returns the number of children, in document order.
	ChildCount() int

	// Child returns the i-th child. It panics if i is out of range.
	Child(i int) Node

	// Content returns the exact source substring spanned by the node.
	Content(source []byte) string
}

// Inspect traverses the tree rooted at n depth-first in pre-order: a node is
// visited before its children, children left-to-right. If f returns false for
// a node, its children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		Inspect(n.Child(i), f)
	}
}
