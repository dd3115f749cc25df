package ast

// At returns the innermost node whose span contains the byte offset, or
// nil when the offset falls outside every root. Desugared nodes without a
// span are never returned.
func At(roots []*Node, offset int) *Node {
	path := PathAt(roots, offset)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// PathAt returns the chain of nodes whose spans contain the byte offset,
// outermost first. Sibling spans never overlap, so the chain is unique.
func PathAt(roots []*Node, offset int) []*Node {
	for _, root := range roots {
		if !root.span.IsValid() || !root.span.Contains(offset) {
			continue
		}

		path := []*Node{root}
		node := root
	descend:
		for node.nt == NodeTypeList {
			for _, kid := range node.kids {
				if kid.span.IsValid() && kid.span.Contains(offset) {
					path = append(path, kid)
					node = kid
					continue descend
				}
			}
			break
		}
		return path
	}
	return nil
}
