package todo

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return &Store{dir: t.TempDir()}
}

func (s *Store) getTodoByID(id string) (*Todo, error) {
	todos, err := s.readTodos()
	if err != nil {
		return nil, err
	}

	resolved, err := resolveTodoIDsWithTodos([]string{id}, todos)
	if err != nil {
		return nil, err
	}

	for i := range todos {
		if todos[i].ID == resolved[0] {
			return &todos[i], nil
		}
	}

	return nil, ErrTodoNotFound
}
