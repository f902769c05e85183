package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Priority is the importance level. Defaults to PriorityMedium when nil.
	Priority *Priority

	// DueDate is an optional due date.
	DueDate *time.Time

	// ParentID makes the new todo a subtask of the given todo.
	ParentID string

	// ProjectID optionally assigns the todo to a project.
	ProjectID string

	// Dependencies is a list of todo IDs the new todo depends on.
	Dependencies []string

	// Tags is a list of existing tag names (or IDs) to attach.
	Tags []string
}

// Create creates a new todo with the given title.
func (s *Store) Create(title string, opts CreateOptions) (*Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	priority := PriorityMedium
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		priority = normalized
	}

	now := time.Now()
	item := Todo{
		ID:          GenerateID(title, now),
		Title:       title,
		Description: opts.Description,
		Status:      StatusPending,
		WorkState:   WorkStateIdle,
		Priority:    priority,
		DueDate:     opts.DueDate,
		ProjectID:   opts.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		if opts.ParentID != "" {
			resolved, err := resolveTodoIDsWithTodos([]string{opts.ParentID}, todos)
			if err != nil {
				return err
			}
			item.ParentID = resolved[0]
		}

		var depIDs []string
		if len(opts.Dependencies) > 0 {
			depIDs, err = resolveTodoIDsWithTodos(opts.Dependencies, todos)
			if err != nil {
				return err
			}
			seen := make(map[string]struct{})
			for _, depID := range depIDs {
				if depID == item.ID {
					return ErrSelfDependency
				}
				if _, ok := seen[depID]; ok {
					return ErrDuplicateDependency
				}
				seen[depID] = struct{}{}
			}
		}

		var tagIDs []string
		if len(opts.Tags) > 0 {
			tags, err := s.readTags()
			if err != nil {
				return err
			}
			for _, name := range opts.Tags {
				tag := findTag(tags, name)
				if tag == nil {
					return fmt.Errorf("%w: %q", ErrTagNotFound, name)
				}
				tagIDs = append(tagIDs, tag.ID)
			}
		}

		todos = append(todos, item)
		if err := s.writeTodos(todos); err != nil {
			return err
		}

		if len(depIDs) > 0 {
			deps, err := s.readDependencies()
			if err != nil {
				return err
			}
			for _, depID := range depIDs {
				deps = append(deps, Dependency{
					TodoID:      item.ID,
					DependsOnID: depID,
					CreatedAt:   now,
				})
			}
			if err := s.writeDependencies(deps); err != nil {
				return err
			}
		}

		if len(tagIDs) > 0 {
			assignments, err := s.readTagAssignments()
			if err != nil {
				return err
			}
			for _, tagID := range tagIDs {
				assignments = append(assignments, TagAssignment{
					TodoID:    item.ID,
					TagID:     tagID,
					CreatedAt: now,
				})
			}
			if err := s.writeTagAssignments(assignments); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateOptions configures fields to update on todos.
// Nil pointers mean "don't update this field". Status and work state are
// not updatable here; they belong to the time-tracking operations.
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	ProjectID   *string

	// ClearDueDate removes the due date. Takes precedence over DueDate.
	ClearDueDate bool
}

// Update updates one or more todos with the given options.
// Returns the updated todos.
func (s *Store) Update(ids []string, opts UpdateOptions) ([]Todo, error) {
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}

	var updated []Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolvedIDs, err := resolveTodoIDsWithTodos(ids, todos)
		if err != nil {
			return err
		}

		idSet := make(map[string]bool)
		for _, id := range resolvedIDs {
			idSet[id] = true
		}

		now := time.Now()
		for i := range todos {
			if !idSet[todos[i].ID] {
				continue
			}
			delete(idSet, todos[i].ID)

			if opts.Title != nil {
				todos[i].Title = *opts.Title
			}
			if opts.Description != nil {
				todos[i].Description = *opts.Description
			}
			if opts.Priority != nil {
				todos[i].Priority = *opts.Priority
			}
			if opts.ClearDueDate {
				todos[i].DueDate = nil
			} else if opts.DueDate != nil {
				todos[i].DueDate = opts.DueDate
			}
			if opts.ProjectID != nil {
				todos[i].ProjectID = *opts.ProjectID
			}
			todos[i].UpdatedAt = now

			if err := ValidateTodo(&todos[i]); err != nil {
				return fmt.Errorf("validate todo %s: %w", todos[i].ID, err)
			}

			updated = append(updated, todos[i])
		}

		if len(idSet) > 0 {
			var missing []string
			for id := range idSet {
				missing = append(missing, id)
			}
			return missingTodoIDsError(missing)
		}

		return s.writeTodos(todos)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes one or more todos. Children of deleted
// todos become roots; dependency edges, tag assignments, and activities
// touching the deleted todos are removed as well.
func (s *Store) Delete(ids []string) ([]Todo, error) {
	var deleted []Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolvedIDs, err := resolveTodoIDsWithTodos(ids, todos)
		if err != nil {
			return err
		}

		idSet := make(map[string]bool)
		for _, id := range resolvedIDs {
			idSet[id] = true
		}

		kept := make([]Todo, 0, len(todos))
		for _, item := range todos {
			if idSet[item.ID] {
				deleted = append(deleted, item)
				continue
			}
			if idSet[item.ParentID] {
				item.ParentID = ""
			}
			kept = append(kept, item)
		}

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}
		keptDeps := deps[:0]
		for _, dep := range deps {
			if idSet[dep.TodoID] || idSet[dep.DependsOnID] {
				continue
			}
			keptDeps = append(keptDeps, dep)
		}

		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}
		keptAssignments := assignments[:0]
		for _, assignment := range assignments {
			if !idSet[assignment.TodoID] {
				keptAssignments = append(keptAssignments, assignment)
			}
		}

		activities, err := s.readActivities()
		if err != nil {
			return err
		}
		keptActivities := activities[:0]
		for _, activity := range activities {
			if !idSet[activity.TodoID] {
				keptActivities = append(keptActivities, activity)
			}
		}

		if err := s.writeTodos(kept); err != nil {
			return err
		}
		if err := s.writeDependencies(keptDeps); err != nil {
			return err
		}
		if err := s.writeTagAssignments(keptAssignments); err != nil {
			return err
		}
		return s.writeActivities(keptActivities)
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// Show returns the full details of one or more todos.
func (s *Store) Show(ids []string) ([]Todo, error) {
	var result []Todo
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolvedIDs, err := resolveTodoIDsWithTodos(ids, todos)
		if err != nil {
			return err
		}

		todoByID := todoMapByID(todos)

		seen := make(map[string]bool)
		var missing []string
		for _, id := range resolvedIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			item, ok := todoByID[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			result = append(result, *item)
		}

		return missingTodoIDsError(missing)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListFilter configures which todos to return.
type ListFilter struct {
	// Status filters by exact status match.
	Status *Status

	// WorkState filters by exact work state match.
	WorkState *WorkState

	// Priority filters by exact priority match.
	Priority *Priority

	// ParentID filters to direct subtasks of the given todo. An empty
	// non-nil value filters to root todos.
	ParentID *string

	// ProjectID filters by project.
	ProjectID *string

	// Tag filters to todos carrying the given tag (name or ID).
	Tag string

	// IDs filters to specific IDs.
	IDs []string

	// TitleSubstring filters to todos with this substring in the title.
	TitleSubstring string

	// DescriptionSubstring filters to todos with this substring in the description.
	DescriptionSubstring string

	// DueBefore filters to todos due strictly before the given time.
	DueBefore *time.Time
}

// List returns todos matching the filter.
func (s *Store) List(filter ListFilter) ([]Todo, error) {
	if filter.Status != nil {
		normalized, err := normalizeStatusInput(*filter.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &normalized
	}
	if filter.WorkState != nil {
		normalized, err := normalizeWorkStateInput(*filter.WorkState)
		if err != nil {
			return nil, err
		}
		filter.WorkState = &normalized
	}
	if filter.Priority != nil {
		normalized, err := normalizePriorityInput(*filter.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &normalized
	}

	titleQuery := strings.ToLower(filter.TitleSubstring)
	descriptionQuery := strings.ToLower(filter.DescriptionSubstring)

	var result []Todo
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		var idSet map[string]bool
		if len(filter.IDs) > 0 {
			resolvedIDs, err := resolveTodoIDsWithTodos(filter.IDs, todos)
			if err != nil {
				return err
			}
			idSet = make(map[string]bool)
			for _, id := range resolvedIDs {
				idSet[id] = true
			}
		}

		var taggedSet map[string]bool
		if filter.Tag != "" {
			tags, err := s.readTags()
			if err != nil {
				return err
			}
			tag := findTag(tags, filter.Tag)
			if tag == nil {
				return fmt.Errorf("%w: %q", ErrTagNotFound, filter.Tag)
			}
			assignments, err := s.readTagAssignments()
			if err != nil {
				return err
			}
			taggedSet = make(map[string]bool)
			for _, assignment := range assignments {
				if assignment.TagID == tag.ID {
					taggedSet[assignment.TodoID] = true
				}
			}
		}

		for _, item := range todos {
			if filter.Status != nil && item.Status != *filter.Status {
				continue
			}
			if filter.WorkState != nil && item.WorkState != *filter.WorkState {
				continue
			}
			if filter.Priority != nil && item.Priority != *filter.Priority {
				continue
			}
			if filter.ParentID != nil && item.ParentID != *filter.ParentID {
				continue
			}
			if filter.ProjectID != nil && item.ProjectID != *filter.ProjectID {
				continue
			}
			if taggedSet != nil && !taggedSet[item.ID] {
				continue
			}
			if idSet != nil && !idSet[item.ID] {
				continue
			}
			if titleQuery != "" && !strings.Contains(strings.ToLower(item.Title), titleQuery) {
				continue
			}
			if descriptionQuery != "" && !strings.Contains(strings.ToLower(item.Description), descriptionQuery) {
				continue
			}
			if filter.DueBefore != nil {
				if item.DueDate == nil || !item.DueDate.Before(*filter.DueBefore) {
					continue
				}
			}

			result = append(result, item)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Ready returns pending todos with no uncompleted blockers, sorted by
// priority, then age.
func (s *Store) Ready(limit int) ([]Todo, error) {
	var ready []Todo
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		deps, err := s.readDependencies()
		if err != nil {
			return err
		}

		todoByID := todoMapByID(todos)

		blockers := make(map[string][]string)
		for _, dep := range deps {
			blockers[dep.TodoID] = append(blockers[dep.TodoID], dep.DependsOnID)
		}

		for _, item := range todos {
			if item.Status != StatusPending {
				continue
			}

			hasOpenBlocker := false
			for _, blockerID := range blockers[item.ID] {
				blocker, ok := todoByID[blockerID]
				if ok && blocker.Status != StatusCompleted {
					hasOpenBlocker = true
					break
				}
			}

			if !hasOpenBlocker {
				ready = append(ready, item)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(ready, func(i, j int) bool {
		if PriorityRank(ready[i].Priority) != PriorityRank(ready[j].Priority) {
			return PriorityRank(ready[i].Priority) < PriorityRank(ready[j].Priority)
		}
		return ready[i].CreatedAt.Before(ready[j].CreatedAt)
	})

	if limit > 0 && len(ready) > limit {
		ready = ready[:limit]
	}

	return ready, nil
}

func todoMapByID(todos []Todo) map[string]*Todo {
	todoMap := make(map[string]*Todo, len(todos))
	for i := range todos {
		todoMap[todos[i].ID] = &todos[i]
	}
	return todoMap
}

func missingTodoIDsError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTodoNotFound, strings.Join(missing, ", "))
}
