package todo

import (
	"fmt"
	"sort"
	"time"

	"github.com/SuzumiyaAoba/toodo/internal/ids"
	internalstrings "github.com/SuzumiyaAoba/toodo/internal/strings"
)

// Tag is a label that can be attached to any number of todos.
type Tag struct {
	// ID is a unique identifier for the tag.
	ID string `json:"id"`

	// Name is the normalized (lowercase, trimmed) tag name, unique
	// across the store.
	Name string `json:"name"`

	// CreatedAt is when the tag was created.
	CreatedAt time.Time `json:"created_at"`
}

// TagAssignment links a todo to a tag.
type TagAssignment struct {
	// TodoID is the tagged todo.
	TodoID string `json:"todo_id"`

	// TagID is the attached tag.
	TagID string `json:"tag_id"`

	// CreatedAt is when the tag was attached.
	CreatedAt time.Time `json:"created_at"`
}

// CreateTag creates a new tag with the given name.
func (s *Store) CreateTag(name string) (*Tag, error) {
	normalized := internalstrings.NormalizeLowerTrimSpace(name)
	if normalized == "" {
		return nil, ErrEmptyTagName
	}

	now := time.Now()
	tag := Tag{
		ID:        ids.GenerateWithTimestamp(normalized, now, ids.DefaultLength),
		Name:      normalized,
		CreatedAt: now,
	}

	err := s.update(func() error {
		tags, err := s.readTags()
		if err != nil {
			return err
		}

		for _, existing := range tags {
			if existing.Name == normalized {
				return fmt.Errorf("%w: %q", ErrDuplicateTag, normalized)
			}
		}

		tags = append(tags, tag)
		return s.writeTags(tags)
	})
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// DeleteTag removes a tag and all its assignments. The tag may be given
// by name or ID.
func (s *Store) DeleteTag(nameOrID string) error {
	return s.update(func() error {
		tags, err := s.readTags()
		if err != nil {
			return err
		}

		tag, remaining := takeTag(tags, nameOrID)
		if tag == nil {
			return fmt.Errorf("%w: %q", ErrTagNotFound, nameOrID)
		}

		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}
		kept := assignments[:0]
		for _, assignment := range assignments {
			if assignment.TagID != tag.ID {
				kept = append(kept, assignment)
			}
		}

		if err := s.writeTags(remaining); err != nil {
			return err
		}
		return s.writeTagAssignments(kept)
	})
}

// ListTags returns all tags sorted by name.
func (s *Store) ListTags() ([]Tag, error) {
	var tags []Tag
	err := s.withLock(func() error {
		var err error
		tags, err = s.readTags()
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// AttachTag attaches a tag (by name or ID) to a todo.
func (s *Store) AttachTag(todoID, nameOrID string) error {
	return s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}
		resolved, err := resolveTodoIDsWithTodos([]string{todoID}, todos)
		if err != nil {
			return err
		}

		tags, err := s.readTags()
		if err != nil {
			return err
		}
		tag := findTag(tags, nameOrID)
		if tag == nil {
			return fmt.Errorf("%w: %q", ErrTagNotFound, nameOrID)
		}

		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}
		for _, assignment := range assignments {
			if assignment.TodoID == resolved[0] && assignment.TagID == tag.ID {
				return fmt.Errorf("%w: %q", ErrTagAlreadyAttached, tag.Name)
			}
		}

		assignments = append(assignments, TagAssignment{
			TodoID:    resolved[0],
			TagID:     tag.ID,
			CreatedAt: time.Now(),
		})
		return s.writeTagAssignments(assignments)
	})
}

// DetachTag removes a tag (by name or ID) from a todo.
func (s *Store) DetachTag(todoID, nameOrID string) error {
	return s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}
		resolved, err := resolveTodoIDsWithTodos([]string{todoID}, todos)
		if err != nil {
			return err
		}

		tags, err := s.readTags()
		if err != nil {
			return err
		}
		tag := findTag(tags, nameOrID)
		if tag == nil {
			return fmt.Errorf("%w: %q", ErrTagNotFound, nameOrID)
		}

		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}
		found := false
		kept := assignments[:0]
		for _, assignment := range assignments {
			if assignment.TodoID == resolved[0] && assignment.TagID == tag.ID {
				found = true
				continue
			}
			kept = append(kept, assignment)
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrTagNotAttached, tag.Name)
		}

		return s.writeTagAssignments(kept)
	})
}

// TagsForItem returns the tags attached to a todo, sorted by name.
func (s *Store) TagsForItem(todoID string) ([]Tag, error) {
	var result []Tag
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}
		resolved, err := resolveTodoIDsWithTodos([]string{todoID}, todos)
		if err != nil {
			return err
		}

		tags, err := s.readTags()
		if err != nil {
			return err
		}
		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}

		tagByID := make(map[string]Tag, len(tags))
		for _, tag := range tags {
			tagByID[tag.ID] = tag
		}

		for _, assignment := range assignments {
			if assignment.TodoID != resolved[0] {
				continue
			}
			if tag, ok := tagByID[assignment.TagID]; ok {
				result = append(result, tag)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// ItemTagIDs returns the IDs of the tags attached to a todo. Unlike
// TagsForItem it does not resolve prefixes or verify the todo exists;
// it serves statistics joins where missing todos simply have no tags.
func (s *Store) ItemTagIDs(todoID string) ([]string, error) {
	var result []string
	err := s.withLock(func() error {
		assignments, err := s.readTagAssignments()
		if err != nil {
			return err
		}
		for _, assignment := range assignments {
			if assignment.TodoID == todoID {
				result = append(result, assignment.TagID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findTag(tags []Tag, nameOrID string) *Tag {
	normalized := internalstrings.NormalizeLowerTrimSpace(nameOrID)
	for i := range tags {
		if tags[i].Name == normalized || tags[i].ID == normalized {
			return &tags[i]
		}
	}
	return nil
}

func takeTag(tags []Tag, nameOrID string) (*Tag, []Tag) {
	tag := findTag(tags, nameOrID)
	if tag == nil {
		return nil, tags
	}
	remaining := make([]Tag, 0, len(tags)-1)
	for _, existing := range tags {
		if existing.ID != tag.ID {
			remaining = append(remaining, existing)
		}
	}
	return tag, remaining
}
