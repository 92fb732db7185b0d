package diagfmt

import (
	"fmt"
	"io"

	"relaxfmt/internal/doc"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// buildDocTreeNode строит дерево подписей для документа.
func buildDocTreeNode(d doc.Document) *treeNode {
	switch n := d.(type) {
	case nil:
		return &treeNode{label: "<nil>"}
	case doc.Text:
		return &treeNode{label: fmt.Sprintf("Text %q", n.Content)}
	case doc.Cons:
		return &treeNode{label: "Cons", children: []*treeNode{
			buildDocTreeNode(n.Left),
			buildDocTreeNode(n.Right),
		}}
	case doc.Break:
		return &treeNode{label: fmt.Sprintf("Break %q %s", n.Sep, n.Mode)}
	case doc.Nest:
		return &treeNode{
			label:    fmt.Sprintf("Nest %s %s", n.Indent, n.Mode),
			children: []*treeNode{buildDocTreeNode(n.Inner)},
		}
	case doc.Group:
		return &treeNode{
			label:    fmt.Sprintf("Group %s", n.Mode),
			children: []*treeNode{buildDocTreeNode(n.Inner)},
		}
	case doc.Force:
		return &treeNode{label: "Force", children: []*treeNode{buildDocTreeNode(n.Inner)}}
	case doc.Tagged:
		node := &treeNode{label: fmt.Sprintf("Tagged %s", n.Tag)}
		for _, a := range n.Args {
			node.children = append(node.children, buildDocTreeNode(a))
		}
		return node
	case doc.Marker:
		if n == doc.Line {
			return &treeNode{label: "Line"}
		}
		return &treeNode{label: "Nil"}
	}
	return &treeNode{label: fmt.Sprintf("%T", d)}
}

// FormatDocPretty prints d as an indented tree.
func FormatDocPretty(w io.Writer, d doc.Document) error {
	root := buildDocTreeNode(d)
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeTreeChildren(w, root, "")
}

func writeTreeChildren(w io.Writer, node *treeNode, prefix string) error {
	for i, child := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := writeTreeChildren(w, child, prefix+next); err != nil {
			return err
		}
	}
	return nil
}
