package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidWorkState is returned when an invalid work state is provided.
	ErrInvalidWorkState = errors.New("invalid work state")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidActivityType is returned when an invalid activity type is provided.
	ErrInvalidActivityType = errors.New("invalid activity type")

	// ErrInvalidStateTransition is returned when a work-state guard is violated.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrNegativeWorkTime is returned when a todo has a negative total work time.
	ErrNegativeWorkTime = errors.New("total work time cannot be negative")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrActivityNotFound is returned when an activity with the given ID doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrSelfReference is returned when a todo is made its own parent.
	ErrSelfReference = errors.New("todo cannot be its own parent")

	// ErrCircularReference is returned when a parent assignment would
	// create a cycle in the hierarchy.
	ErrCircularReference = errors.New("parent assignment would create a cycle")

	// ErrNotSubtask is returned when removing a subtask link that doesn't exist.
	ErrNotSubtask = errors.New("todo is not a subtask of the given parent")

	// ErrSelfDependency is returned when trying to create a dependency on itself.
	ErrSelfDependency = errors.New("todo cannot depend on itself")

	// ErrDuplicateDependency is returned when the dependency already exists.
	ErrDuplicateDependency = errors.New("dependency already exists")

	// ErrDependencyNotFound is returned when removing a dependency edge
	// that doesn't exist.
	ErrDependencyNotFound = errors.New("dependency not found")

	// ErrDependencyCycle is returned when adding a dependency would create
	// a cycle, or when one is detected while unfolding a dependency tree.
	ErrDependencyCycle = errors.New("dependency would create a cycle")

	// ErrEmptyTagName is returned when a tag name is empty after normalization.
	ErrEmptyTagName = errors.New("tag name cannot be empty")

	// ErrDuplicateTag is returned when a tag with the same name already exists.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrTagNotFound is returned when a tag with the given name or ID doesn't exist.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagAlreadyAttached is returned when attaching a tag a todo already has.
	ErrTagAlreadyAttached = errors.New("tag already attached")

	// ErrTagNotAttached is returned when detaching a tag a todo doesn't have.
	ErrTagNotAttached = errors.New("tag not attached")

	// ErrNoStore is returned when the data directory doesn't exist.
	ErrNoStore = errors.New("no todo store found")

	// ErrReadOnlyStore is returned when writing through a read-only store.
	ErrReadOnlyStore = errors.New("store is read-only")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	if !t.WorkState.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidWorkState, t.WorkState)
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}

	if t.TotalWorkTime < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeWorkTime, t.TotalWorkTime)
	}

	if t.ParentID == t.ID && t.ID != "" {
		return ErrSelfReference
	}

	return nil
}

// ValidateDependency checks if a dependency edge is valid.
func ValidateDependency(d *Dependency) error {
	if d.TodoID == "" {
		return fmt.Errorf("todo_id cannot be empty")
	}
	if d.DependsOnID == "" {
		return fmt.Errorf("depends_on_id cannot be empty")
	}
	if d.TodoID == d.DependsOnID {
		return ErrSelfDependency
	}
	return nil
}
