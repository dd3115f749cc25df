package ast

import (
	"github.com/hql-lang/hql/source"
)

// Node is one expression in the symbolic-expression tree. Nodes are
// created by the reader and immutable afterwards: a new parse call builds
// an entirely new tree and never touches previously returned ones.
//
// Nodes built from surface text carry the span recorded at construction
// time; nodes injected by desugaring (operator heads like "vector" or
// "get") carry the zero span.
type Node struct {
	p *Node

	nt   NodeType
	span source.Span

	num  float64
	text string
	b    bool

	kids []*Node
}

// NewNil creates a nil literal node
func NewNil(span source.Span) *Node {
	return &Node{nt: NodeTypeNil, span: span}
}

// NewBool creates a boolean literal node
func NewBool(span source.Span, v bool) *Node {
	return &Node{nt: NodeTypeBool, span: span, b: v}
}

// NewNumber creates a number node
func NewNumber(span source.Span, v float64) *Node {
	return &Node{nt: NodeTypeNumber, span: span, num: v}
}

// NewString creates a string node holding the fully unescaped value
func NewString(span source.Span, v string) *Node {
	return &Node{nt: NodeTypeString, span: span, text: v}
}

// NewSymbol creates a symbol node
func NewSymbol(span source.Span, name string) *Node {
	return &Node{nt: NodeTypeSymbol, span: span, text: name}
}

// NewList creates a list node over the given children
func NewList(span source.Span, kids ...*Node) *Node {
	n := &Node{nt: NodeTypeList, span: span, kids: kids}
	for _, kid := range kids {
		kid.p = n
	}
	return n
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Span returns the source interval the node was built from
func (n *Node) Span() source.Span {
	return n.span
}

// HasSpan reports whether the node has surface text of its own
func (n *Node) HasSpan() bool {
	return n.span.IsValid()
}

// Parent returns the list the node belongs to, or nil for a root
func (n *Node) Parent() *Node {
	return n.p
}

// Bool returns the value of a boolean node
func (n *Node) Bool() bool {
	return n.b
}

// Number returns the value of a number node
func (n *Node) Number() float64 {
	return n.num
}

// Text returns the value of a string node
func (n *Node) Text() string {
	return n.text
}

// Name returns the name of a symbol node
func (n *Node) Name() string {
	return n.text
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// IsSymbol returns true if the node is the named symbol
func (n *Node) IsSymbol(name string) bool {
	return n.nt == NodeTypeSymbol && n.text == name
}

// Children returns the elements of a list node
func (n *Node) Children() []*Node {
	return n.kids
}

// Len returns the number of elements of a list node
func (n *Node) Len() int {
	return len(n.kids)
}

// Head returns the first element of a list node, or nil
func (n *Node) Head() *Node {
	if len(n.kids) == 0 {
		return nil
	}
	return n.kids[0]
}

// Equal reports whether two trees are structurally identical, ignoring
// spans and parents.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	switch a.nt {
	case NodeTypeBool:
		return a.b == b.b
	case NodeTypeNumber:
		return a.num == b.num
	case NodeTypeString, NodeTypeSymbol:
		return a.text == b.text
	case NodeTypeList:
		if len(a.kids) != len(b.kids) {
			return false
		}
		for i := range a.kids {
			if !Equal(a.kids[i], b.kids[i]) {
				return false
			}
		}
	}
	return true
}
