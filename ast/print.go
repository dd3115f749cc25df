package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical surface text of the node. Desugared forms
// print in their desugared shape, so reparsing the output yields a
// structurally identical tree. Numbers never use exponent notation and
// integers render without a trailing ".0".
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.nt {
	case NodeTypeNil:
		b.WriteString("nil")

	case NodeTypeBool:
		b.WriteString(strconv.FormatBool(n.b))

	case NodeTypeNumber:
		b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))

	case NodeTypeString:
		writeQuoted(b, n.text)

	case NodeTypeSymbol:
		b.WriteString(n.text)

	case NodeTypeList:
		b.WriteByte('(')
		for i, kid := range n.kids {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, kid)
		}
		b.WriteByte(')')
	}
}

// writeQuoted emits a string literal with the grammar's two escapes and
// nothing else; newlines and every other character stay raw.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
}

// Dump returns an indented tree view of a node with node types and source
// spans, for debugging
func Dump(n *Node) string {
	var b strings.Builder
	dumpLevel(&b, n, 0)
	return b.String()
}

func dumpLevel(b *strings.Builder, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	fmt.Fprintf(b, "%s(%v)", indent, n.nt)
	switch n.nt {
	case NodeTypeBool:
		fmt.Fprintf(b, " %v", n.b)
	case NodeTypeNumber:
		fmt.Fprintf(b, " %v", strconv.FormatFloat(n.num, 'f', -1, 64))
	case NodeTypeString:
		fmt.Fprintf(b, " %q", n.text)
	case NodeTypeSymbol:
		fmt.Fprintf(b, " %s", n.text)
	case NodeTypeList:
		fmt.Fprintf(b, "[%d]", len(n.kids))
	}
	if n.span.IsValid() {
		fmt.Fprintf(b, " %v", n.span)
	}
	b.WriteByte('\n')

	for _, kid := range n.kids {
		dumpLevel(b, kid, level+1)
	}
}
