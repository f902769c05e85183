package todo

import (
	"fmt"
	"time"
)

// SetParent makes child a subtask of parent. It fails with
// ErrSelfReference when child and parent are the same todo, and with
// ErrCircularReference when parent is already a descendant of child.
// The ancestor walk is bounded by hierarchy depth: the hierarchy is a
// tree, so walking parent pointers upward from parent either reaches a
// root or reaches child.
func (s *Store) SetParent(childID, parentID string) (*Todo, error) {
	var updated *Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{childID, parentID}, todos)
		if err != nil {
			return err
		}
		childID, parentID := resolved[0], resolved[1]

		if childID == parentID {
			return ErrSelfReference
		}

		todoByID := todoMapByID(todos)
		if isAncestor(childID, parentID, todoByID) {
			return fmt.Errorf("%w: %s is a descendant of %s", ErrCircularReference, parentID, childID)
		}

		child := todoByID[childID]
		child.ParentID = parentID
		child.UpdatedAt = time.Now()
		updated = child

		return s.writeTodos(todos)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveParent detaches a todo from its parent, making it a root.
func (s *Store) RemoveParent(childID string) (*Todo, error) {
	var updated *Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{childID}, todos)
		if err != nil {
			return err
		}

		child := todoMapByID(todos)[resolved[0]]
		child.ParentID = ""
		child.UpdatedAt = time.Now()
		updated = child

		return s.writeTodos(todos)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddSubtask makes child a subtask of parent. It is the inverse-direction
// convenience for SetParent.
func (s *Store) AddSubtask(parentID, childID string) (*Todo, error) {
	return s.SetParent(childID, parentID)
}

// RemoveSubtask detaches child from parent. It fails with ErrNotSubtask
// when child is not currently a subtask of parent.
func (s *Store) RemoveSubtask(parentID, childID string) (*Todo, error) {
	var updated *Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{parentID, childID}, todos)
		if err != nil {
			return err
		}
		parentID, childID := resolved[0], resolved[1]

		child := todoMapByID(todos)[childID]
		if child.ParentID != parentID {
			return fmt.Errorf("%w: %s is not a subtask of %s", ErrNotSubtask, childID, parentID)
		}
		child.ParentID = ""
		child.UpdatedAt = time.Now()
		updated = child

		return s.writeTodos(todos)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Children returns the direct subtasks of a todo.
func (s *Store) Children(parentID string) ([]Todo, error) {
	var children []Todo
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{parentID}, todos)
		if err != nil {
			return err
		}

		for _, item := range todos {
			if item.ParentID == resolved[0] {
				children = append(children, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return children, nil
}

// isAncestor reports whether ancestorID is reached by walking parent
// pointers upward from startID. The visited guard protects against
// corrupted data; with an intact tree it never fires.
func isAncestor(ancestorID, startID string, todoByID map[string]*Todo) bool {
	visited := make(map[string]bool)
	current := startID
	for current != "" {
		if current == ancestorID {
			return true
		}
		if visited[current] {
			return false
		}
		visited[current] = true

		item, ok := todoByID[current]
		if !ok {
			return false
		}
		current = item.ParentID
	}
	return false
}

// AddDependency adds a "depends on" edge between two todos. It fails
// with ErrSelfDependency for self-edges, ErrDuplicateDependency when the
// edge already exists, and ErrDependencyCycle when the dependency can
// already reach the todo through existing edges.
func (s *Store) AddDependency(todoID, dependsOnID string) (*Dependency, error) {
	var dep Dependency
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{todoID, dependsOnID}, todos)
		if err != nil {
			return err
		}
		dep = Dependency{
			TodoID:      resolved[0],
			DependsOnID: resolved[1],
			CreatedAt:   time.Now(),
		}
		if err := ValidateDependency(&dep); err != nil {
			return err
		}

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}

		for _, d := range deps {
			if d.TodoID == dep.TodoID && d.DependsOnID == dep.DependsOnID {
				return ErrDuplicateDependency
			}
		}

		if dependencyReaches(deps, dep.DependsOnID, dep.TodoID) {
			return fmt.Errorf("%w: %s already depends on %s", ErrDependencyCycle, dep.DependsOnID, dep.TodoID)
		}

		deps = append(deps, dep)

		return s.writeDependencies(deps)
	})
	if err != nil {
		return nil, err
	}

	return &dep, nil
}

// RemoveDependency removes a "depends on" edge. It fails with
// ErrDependencyNotFound when the edge does not exist.
func (s *Store) RemoveDependency(todoID, dependsOnID string) error {
	return s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{todoID, dependsOnID}, todos)
		if err != nil {
			return err
		}
		todoID, dependsOnID := resolved[0], resolved[1]

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}

		found := false
		kept := deps[:0]
		for _, d := range deps {
			if d.TodoID == todoID && d.DependsOnID == dependsOnID {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		if !found {
			return fmt.Errorf("%w: %s -> %s", ErrDependencyNotFound, todoID, dependsOnID)
		}

		return s.writeDependencies(kept)
	})
}

// Dependencies returns the todos that the given todo depends on.
func (s *Store) Dependencies(todoID string) ([]Todo, error) {
	return s.dependencyView(todoID, func(d Dependency, id string) string {
		if d.TodoID == id {
			return d.DependsOnID
		}
		return ""
	})
}

// Dependents returns the todos that depend on the given todo. This is
// the derived inverse view of the dependency edge table.
func (s *Store) Dependents(todoID string) ([]Todo, error) {
	return s.dependencyView(todoID, func(d Dependency, id string) string {
		if d.DependsOnID == id {
			return d.TodoID
		}
		return ""
	})
}

func (s *Store) dependencyView(todoID string, pick func(Dependency, string) string) ([]Todo, error) {
	var result []Todo
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{todoID}, todos)
		if err != nil {
			return err
		}

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}

		todoByID := todoMapByID(todos)
		for _, d := range deps {
			otherID := pick(d, resolved[0])
			if otherID == "" {
				continue
			}
			if other, ok := todoByID[otherID]; ok {
				result = append(result, *other)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// dependencyReaches reports whether target is reachable from start by
// following dependency edges forward. Breadth-first, bounded by the
// total number of edges.
func dependencyReaches(deps []Dependency, start, target string) bool {
	forward := make(map[string][]string)
	for _, d := range deps {
		forward[d.TodoID] = append(forward[d.TodoID], d.DependsOnID)
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			return true
		}
		for _, next := range forward[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// DependencyTree returns the dependency tree for a todo, unfolded to at
// most maxDepth levels (DefaultDepTreeDepth when maxDepth <= 0). Cycle
// prevention in AddDependency guarantees the unfolding terminates; if a
// cycle is nonetheless encountered (corrupted data), the operation fails
// with ErrDependencyCycle rather than looping.
func (s *Store) DependencyTree(id string, maxDepth int) (*DepTreeNode, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultDepTreeDepth
	}

	var root *DepTreeNode
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{id}, todos)
		if err != nil {
			return err
		}

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}

		todoByID := todoMapByID(todos)
		depsByTodo := make(map[string][]Dependency)
		for _, d := range deps {
			depsByTodo[d.TodoID] = append(depsByTodo[d.TodoID], d)
		}

		rootTodo, ok := todoByID[resolved[0]]
		if !ok {
			return ErrTodoNotFound
		}

		path := make(map[string]bool)
		root, err = buildDepTree(rootTodo, depsByTodo, todoByID, path, maxDepth)
		return err
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}

func buildDepTree(item *Todo, depsByTodo map[string][]Dependency, todoByID map[string]*Todo, path map[string]bool, depth int) (*DepTreeNode, error) {
	if path[item.ID] {
		return nil, fmt.Errorf("%w: %s reached again while unfolding", ErrDependencyCycle, item.ID)
	}

	node := &DepTreeNode{Todo: item}
	if depth <= 0 {
		return node, nil
	}

	path[item.ID] = true
	defer delete(path, item.ID)

	for _, dep := range depsByTodo[item.ID] {
		childTodo, ok := todoByID[dep.DependsOnID]
		if !ok {
			continue
		}
		childNode, err := buildDepTree(childTodo, depsByTodo, todoByID, path, depth-1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}

	return node, nil
}
