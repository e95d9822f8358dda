package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeType represent the kind of a TreeNode
type NodeType int

const (
	NodeFile NodeType = iota
	NodeDirectory
	NodeUnsupported
)

// nodeTypes is slice of NodeType
// string representations
var nodeTypes = [...]string{
	NodeFile:      "file",
	NodeDirectory: "directory",
}

// String return NodeType enum as a string
func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypes) {
		return "unsupported"
	}
	return nodeTypes[t]
}

// MarshalJSON encodes the NodeType as its string representation
func (t NodeType) MarshalJSON() ([]byte, error) {
	if t == NodeUnsupported {
		return nil, fmt.Errorf("can not marshal unsupported node type")
	}
	return json.Marshal(t.String())
}

// NodeTypeFromString return new NodeType
// enum from given string
func NodeTypeFromString(s string) (NodeType, error) {
	for i, r := range nodeTypes {
		if strings.ToLower(s) == r {
			return NodeType(i), nil
		}
	}
	return NodeUnsupported, fmt.Errorf("invalid node type value %q", s)
}

// TreeStrategy represent available repository structure listing strategies
type TreeStrategy int

const (
	// TreeNested lists every directory separately and nests the result
	TreeNested TreeStrategy = iota
	// TreeFlat fetches the recursive git tree with a single call
	TreeFlat
	TreeUnsupported
)

var treeStrategies = [...]string{
	TreeNested: "nested",
	TreeFlat:   "flat",
}

// String return TreeStrategy enum as a string
func (s TreeStrategy) String() string {
	if s < 0 || int(s) >= len(treeStrategies) {
		return "unsupported"
	}
	return treeStrategies[s]
}

// TreeStrategyFromString return new TreeStrategy
// enum from given string
func TreeStrategyFromString(s string) (TreeStrategy, error) {
	for i, r := range treeStrategies {
		if strings.ToLower(s) == r {
			return TreeStrategy(i), nil
		}
	}
	return TreeUnsupported, fmt.Errorf("invalid tree strategy value %q", s)
}
