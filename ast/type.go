package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeNil
	NodeTypeBool
	NodeTypeNumber
	NodeTypeString
	NodeTypeSymbol
	NodeTypeList
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeNil:     "nil",
	NodeTypeBool:    "bool",
	NodeTypeNumber:  "number",
	NodeTypeString:  "string",
	NodeTypeSymbol:  "symbol",
	NodeTypeList:    "list",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}
