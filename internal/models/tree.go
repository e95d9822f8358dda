package models

import (
	"encoding/json"

	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// TreeNode is one entry of a nested repository listing.
// Children is only set for directories and keeps upstream order.
type TreeNode struct {
	Type     NodeType    `json:"type"`
	Name     string      `json:"name"`
	Children []*TreeNode `json:"children,omitempty"`
}

// MarshalJSON always emits children for directories, even empty
// ones, and never for files.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	if !n.IsDir() {
		return json.Marshal(struct {
			Type NodeType `json:"type"`
			Name string   `json:"name"`
		}{n.Type, n.Name})
	}

	children := n.Children
	if children == nil {
		children = []*TreeNode{}
	}
	return json.Marshal(struct {
		Type     NodeType    `json:"type"`
		Name     string      `json:"name"`
		Children []*TreeNode `json:"children"`
	}{n.Type, n.Name, children})
}

// NewFile returns a file TreeNode.
func NewFile(name string) *TreeNode {
	return &TreeNode{Type: NodeFile, Name: name}
}

// NewDirectory returns a directory TreeNode owning children.
func NewDirectory(name string, children []*TreeNode) *TreeNode {
	if children == nil {
		children = []*TreeNode{}
	}
	return &TreeNode{Type: NodeDirectory, Name: name, Children: children}
}

// IsDir reports whether the node is a directory.
func (n *TreeNode) IsDir() bool {
	return n.Type == NodeDirectory
}

// Entry kinds derived from git file modes.
const (
	KindFile       = "file"
	KindExecutable = "executable"
	KindSymlink    = "symlink"
	KindDirectory  = "directory"
	KindSubmodule  = "submodule"
	KindUnknown    = "unknown"
)

// KindFromMode classifies an octal git file mode such as "100644".
func KindFromMode(mode string) string {
	m, err := filemode.New(mode)
	if err != nil || m.IsMalformed() {
		return KindUnknown
	}

	switch m {
	case filemode.Dir:
		return KindDirectory
	case filemode.Executable:
		return KindExecutable
	case filemode.Symlink:
		return KindSymlink
	case filemode.Submodule:
		return KindSubmodule
	case filemode.Regular, filemode.Deprecated:
		return KindFile
	default:
		return KindUnknown
	}
}

// TreeEntry is one entry of a flat repository listing.
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	Kind string `json:"kind"`
	Size int64  `json:"size,omitempty"`
	SHA  string `json:"sha"`
}

// FlatTree is the whole repository as one list. Truncated is set
// when upstream did not return every entry.
type FlatTree struct {
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}
