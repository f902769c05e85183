package todo

import "time"

// Dependency represents a "depends on" edge between two todos. Edges are
// stored once in this owning form; the dependents view is derived by
// scanning the edge table in the other direction.
type Dependency struct {
	// TodoID is the todo that has the dependency.
	TodoID string `json:"todo_id"`

	// DependsOnID is the todo that TodoID depends on.
	DependsOnID string `json:"depends_on_id"`

	// CreatedAt is when the dependency was created.
	CreatedAt time.Time `json:"created_at"`
}

// DepTreeNode represents a node in a dependency tree.
type DepTreeNode struct {
	// Todo is the todo at this node.
	Todo *Todo

	// Children are the todos that this todo depends on. Nil when the
	// unfolding was cut off at the depth limit.
	Children []*DepTreeNode
}

// DefaultDepTreeDepth caps dependency tree unfolding when no explicit
// depth is given. Cycle prevention already guarantees termination; the
// cap only bounds output size.
const DefaultDepTreeDepth = 10
