package todo

import (
	"fmt"

	"github.com/SuzumiyaAoba/toodo/internal/ids"
)

// IDIndex resolves ID prefixes against the set of known todo IDs.
// Store operations accept any unambiguous prefix, so every lookup
// funnels through an index built from the todos on disk.
type IDIndex struct {
	normalized []string
}

func NewIDIndex(todos []Todo) IDIndex {
	todoIDs := make([]string, 0, len(todos))
	for _, item := range todos {
		todoIDs = append(todoIDs, item.ID)
	}
	return IDIndex{normalized: ids.NormalizeUniqueIDs(todoIDs)}
}

// Resolve expands prefix to the one todo ID it identifies, failing
// with ErrTodoNotFound or ErrAmbiguousTodoIDPrefix otherwise.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTodoNotFound
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.normalized, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTodoIDPrefix, prefix)
	}

	return match, nil
}

// ResolveAll expands every prefix, failing on the first unknown or
// ambiguous one.
func (index IDIndex) ResolveAll(prefixes []string) ([]string, error) {
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("no todo IDs provided")
	}

	resolved := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		full, err := index.Resolve(prefix)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, full)
	}
	return resolved, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by the lowercased full ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.normalized)
}

// resolveTodoIDsWithTodos resolves prefixes against an already-loaded
// todo slice. Mutating operations call it inside their lock, where
// reopening the store to build an index is not an option.
func resolveTodoIDsWithTodos(prefixes []string, todos []Todo) ([]string, error) {
	return NewIDIndex(todos).ResolveAll(prefixes)
}
