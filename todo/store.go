package todo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SuzumiyaAoba/toodo/internal/jsonl"
	"golang.org/x/term"
)

const (
	// TodosFile is the name of the JSONL file containing todos.
	TodosFile = "todos.jsonl"

	// DependenciesFile is the name of the JSONL file containing dependency edges.
	DependenciesFile = "dependencies.jsonl"

	// ActivitiesFile is the name of the JSONL file containing work activities.
	ActivitiesFile = "activities.jsonl"

	// TagsFile is the name of the JSONL file containing tags.
	TagsFile = "tags.jsonl"

	// TagAssignmentsFile is the name of the JSONL file linking todos to tags.
	TagAssignmentsFile = "todo_tags.jsonl"

	lockFile = "store.lock"
)

// Store provides access to the todo data directory. Every mutating
// operation holds an exclusive file lock across its whole
// read-validate-write sequence, so two concurrent edge insertions cannot
// both pass validation and jointly create a cycle.
type Store struct {
	dir      string
	readOnly bool
}

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Prompter is used for user confirmation. If nil, StdioPrompter is used.
	Prompter Prompter

	// CreateIfMissing creates the data directory if it doesn't exist.
	// If false and the directory doesn't exist, ErrNoStore is returned.
	CreateIfMissing bool

	// PromptToCreate prompts the user before creating a new store.
	// Only used when CreateIfMissing is true.
	PromptToCreate bool

	// ReadOnly opens the store for querying only. Read-only mode cannot
	// create missing stores.
	ReadOnly bool
}

// Open opens the todo store rooted at dir.
func Open(dir string, opts OpenOptions) (*Store, error) {
	usesStdioPrompter := opts.Prompter == nil
	if opts.Prompter == nil {
		opts.Prompter = StdioPrompter{}
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("store path %s is not a directory", dir)
		}
	case os.IsNotExist(err):
		if opts.ReadOnly || !opts.CreateIfMissing {
			return nil, fmt.Errorf("%w: %s", ErrNoStore, dir)
		}
		if opts.PromptToCreate {
			shouldPrompt := !usesStdioPrompter || term.IsTerminal(int(os.Stdin.Fd()))
			if shouldPrompt {
				confirmed, err := opts.Prompter.Confirm(fmt.Sprintf("No todo store found at %s. Create one?", dir))
				if err != nil {
					return nil, fmt.Errorf("prompt: %w", err)
				}
				if !confirmed {
					return nil, fmt.Errorf("%w: %s", ErrNoStore, dir)
				}
			}
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat store directory: %w", err)
	}

	return &Store{dir: dir, readOnly: opts.ReadOnly}, nil
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// withLock executes fn while holding the store's exclusive lock. The
// lock spans the caller's entire read-modify-write sequence.
func (s *Store) withLock(fn func() error) error {
	return jsonl.WithFileLock(filepath.Join(s.dir, lockFile), fn)
}

// update runs fn under the store lock after verifying the store is writable.
func (s *Store) update(fn func() error) error {
	if s.readOnly {
		return ErrReadOnlyStore
	}
	return s.withLock(fn)
}

func (s *Store) filePath(filename string) string {
	return filepath.Join(s.dir, filename)
}

// readTodos reads all todos. Callers inside a mutation must already hold
// the store lock; query paths take it per read.
func (s *Store) readTodos() ([]Todo, error) {
	todos, err := jsonl.ReadFile[Todo](s.filePath(TodosFile))
	if err != nil {
		return nil, fmt.Errorf("read todos: %w", err)
	}
	return todos, nil
}

func (s *Store) writeTodos(todos []Todo) error {
	if err := jsonl.WriteFile(s.filePath(TodosFile), todos); err != nil {
		return fmt.Errorf("write todos: %w", err)
	}
	return nil
}

func (s *Store) readDependencies() ([]Dependency, error) {
	deps, err := jsonl.ReadFile[Dependency](s.filePath(DependenciesFile))
	if err != nil {
		return nil, fmt.Errorf("read dependencies: %w", err)
	}
	return deps, nil
}

func (s *Store) writeDependencies(deps []Dependency) error {
	if err := jsonl.WriteFile(s.filePath(DependenciesFile), deps); err != nil {
		return fmt.Errorf("write dependencies: %w", err)
	}
	return nil
}

func (s *Store) readActivities() ([]WorkActivity, error) {
	activities, err := jsonl.ReadFile[WorkActivity](s.filePath(ActivitiesFile))
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	return activities, nil
}

func (s *Store) writeActivities(activities []WorkActivity) error {
	if err := jsonl.WriteFile(s.filePath(ActivitiesFile), activities); err != nil {
		return fmt.Errorf("write activities: %w", err)
	}
	return nil
}

func (s *Store) readTags() ([]Tag, error) {
	tags, err := jsonl.ReadFile[Tag](s.filePath(TagsFile))
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	return tags, nil
}

func (s *Store) writeTags(tags []Tag) error {
	if err := jsonl.WriteFile(s.filePath(TagsFile), tags); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}

func (s *Store) readTagAssignments() ([]TagAssignment, error) {
	assignments, err := jsonl.ReadFile[TagAssignment](s.filePath(TagAssignmentsFile))
	if err != nil {
		return nil, fmt.Errorf("read tag assignments: %w", err)
	}
	return assignments, nil
}

func (s *Store) writeTagAssignments(assignments []TagAssignment) error {
	if err := jsonl.WriteFile(s.filePath(TagAssignmentsFile), assignments); err != nil {
		return fmt.Errorf("write tag assignments: %w", err)
	}
	return nil
}

// IDIndex returns an index of all todo IDs in the store.
func (s *Store) IDIndex() (IDIndex, error) {
	var todos []Todo
	err := s.withLock(func() error {
		var err error
		todos, err = s.readTodos()
		return err
	})
	if err != nil {
		return IDIndex{}, err
	}
	return NewIDIndex(todos), nil
}

