package main

import (
	"fmt"
	"strings"

	"github.com/SuzumiyaAoba/toodo/todo"
)

// printDepTree prints a dependency tree with ASCII art.
func printDepTree(root *todo.DepTreeNode) {
	fmt.Print(formatDepTree(root))
}

func formatDepTree(root *todo.DepTreeNode) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s (%s)\n", statusIcon(root.Todo.Status), root.Todo.Title, root.Todo.ID)
	for i, child := range root.Children {
		formatDepTreeNode(&builder, child, "", i == len(root.Children)-1)
	}
	return builder.String()
}

func formatDepTreeNode(builder *strings.Builder, node *todo.DepTreeNode, prefix string, isLast bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(builder, "%s%s%s %s (%s)\n",
		prefix, connector, statusIcon(node.Todo.Status), node.Todo.Title, node.Todo.ID)

	for i, child := range node.Children {
		formatDepTreeNode(builder, child, childPrefix, i == len(node.Children)-1)
	}
}

// statusIcon returns an icon for the status.
func statusIcon(s todo.Status) string {
	switch s {
	case todo.StatusPending:
		return "[ ]"
	case todo.StatusInProgress:
		return "[~]"
	case todo.StatusCompleted:
		return "[x]"
	default:
		return "[?]"
	}
}
