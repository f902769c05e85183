package todo

import (
	"errors"
	"testing"
	"time"
)

func TestStore_Create(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create("Fix login bug", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if item.Title != "Fix login bug" {
		t.Errorf("expected title 'Fix login bug', got %q", item.Title)
	}
	if item.Status != StatusPending {
		t.Errorf("expected status 'pending', got %q", item.Status)
	}
	if item.WorkState != WorkStateIdle {
		t.Errorf("expected work state 'idle', got %q", item.WorkState)
	}
	if item.Priority != PriorityMedium {
		t.Errorf("expected priority 'medium', got %q", item.Priority)
	}
	if len(item.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", item.ID)
	}
	if item.TotalWorkTime != 0 {
		t.Errorf("expected zero work time, got %d", item.TotalWorkTime)
	}
}

func TestStore_Create_WithOptions(t *testing.T) {
	store := newTestStore(t)

	due := time.Now().Add(48 * time.Hour)
	item, err := store.Create("Add dark mode", CreateOptions{
		Description: "Users want dark mode",
		Priority:    PriorityPtr(PriorityHigh),
		DueDate:     &due,
		ProjectID:   "frontend",
	})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if item.Description != "Users want dark mode" {
		t.Errorf("unexpected description %q", item.Description)
	}
	if item.Priority != PriorityHigh {
		t.Errorf("expected priority 'high', got %q", item.Priority)
	}
	if item.DueDate == nil || !item.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, item.DueDate)
	}
	if item.ProjectID != "frontend" {
		t.Errorf("expected project 'frontend', got %q", item.ProjectID)
	}
}

func TestStore_Create_EmptyTitle(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create("   ", CreateOptions{})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestStore_Create_WithParentAndDependencies(t *testing.T) {
	store := newTestStore(t)

	parent, err := store.Create("Ship v2", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create parent: %v", err)
	}
	blocker, err := store.Create("Write migration", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	item, err := store.Create("Deploy", CreateOptions{
		ParentID:     parent.ID,
		Dependencies: []string{blocker.ID},
	})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if item.ParentID != parent.ID {
		t.Errorf("expected parent %s, got %s", parent.ID, item.ParentID)
	}
	deps, err := store.Dependencies(item.ID)
	if err != nil {
		t.Fatalf("failed to list dependencies: %v", err)
	}
	if len(deps) != 1 || deps[0].ID != blocker.ID {
		t.Errorf("expected single dependency on %s, got %v", blocker.ID, deps)
	}
}

func TestStore_Create_UnknownTag(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create("Tagged", CreateOptions{Tags: []string{"nope"}})
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create("Old title", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	newTitle := "New title"
	newDescription := "more detail"
	updated, err := store.Update([]string{item.ID}, UpdateOptions{
		Title:       &newTitle,
		Description: &newDescription,
		Priority:    PriorityPtr(PriorityLow),
	})
	if err != nil {
		t.Fatalf("failed to update todo: %v", err)
	}

	if len(updated) != 1 {
		t.Fatalf("expected 1 updated todo, got %d", len(updated))
	}
	if updated[0].Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, updated[0].Title)
	}
	if updated[0].Description != newDescription {
		t.Errorf("expected description %q, got %q", newDescription, updated[0].Description)
	}
	if updated[0].Priority != PriorityLow {
		t.Errorf("expected priority 'low', got %q", updated[0].Priority)
	}
}

func TestStore_Update_ClearDueDate(t *testing.T) {
	store := newTestStore(t)

	due := time.Now().Add(time.Hour)
	item, err := store.Create("Due soon", CreateOptions{DueDate: &due})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	updated, err := store.Update([]string{item.ID}, UpdateOptions{ClearDueDate: true})
	if err != nil {
		t.Fatalf("failed to update todo: %v", err)
	}
	if updated[0].DueDate != nil {
		t.Errorf("expected due date cleared, got %v", updated[0].DueDate)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	store := newTestStore(t)

	title := "whatever"
	_, err := store.Update([]string{"zzzzzzzz"}, UpdateOptions{Title: &title})
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestStore_Delete_Cascades(t *testing.T) {
	store := newTestStore(t)

	parent, _ := store.Create("Parent", CreateOptions{})
	child, err := store.Create("Child", CreateOptions{ParentID: parent.ID})
	if err != nil {
		t.Fatalf("failed to create child: %v", err)
	}
	other, _ := store.Create("Other", CreateOptions{})
	if _, err := store.AddDependency(other.ID, parent.ID); err != nil {
		t.Fatalf("failed to add dependency: %v", err)
	}
	if _, _, err := store.Start(parent.ID, ""); err != nil {
		t.Fatalf("failed to start parent: %v", err)
	}

	deleted, err := store.Delete([]string{parent.ID})
	if err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != parent.ID {
		t.Fatalf("expected to delete %s, got %v", parent.ID, deleted)
	}

	// The child is orphaned to a root.
	got, err := store.getTodoByID(child.ID)
	if err != nil {
		t.Fatalf("child disappeared: %v", err)
	}
	if got.ParentID != "" {
		t.Errorf("expected orphaned child, got parent %q", got.ParentID)
	}

	// Dependency edges and activities touching the deleted todo are gone.
	deps, err := store.Dependencies(other.ID)
	if err != nil {
		t.Fatalf("failed to list dependencies: %v", err)
	}
	if len(deps) != 0 {
		t.Errorf("expected no dependencies, got %v", deps)
	}
	activities, err := store.ListActivities()
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if len(activities) != 0 {
		t.Errorf("expected no activities, got %d", len(activities))
	}
}

func TestStore_Show_ByPrefix(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create("Prefix me", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	shown, err := store.Show([]string{item.ID[:4]})
	if err != nil {
		t.Fatalf("failed to show by prefix: %v", err)
	}
	if len(shown) != 1 || shown[0].ID != item.ID {
		t.Errorf("expected %s, got %v", item.ID, shown)
	}
}

func TestStore_List_Filters(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.Create("Write docs", CreateOptions{Priority: PriorityPtr(PriorityHigh)})
	b, _ := store.Create("Review PR", CreateOptions{ProjectID: "infra"})
	if _, _, err := store.Start(b.ID, ""); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	all, err := store.List(ListFilter{})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(all))
	}

	high := PriorityHigh
	highOnly, err := store.List(ListFilter{Priority: &high})
	if err != nil {
		t.Fatalf("failed to list by priority: %v", err)
	}
	if len(highOnly) != 1 || highOnly[0].ID != a.ID {
		t.Errorf("expected only %s, got %v", a.ID, highOnly)
	}

	inProgress := StatusInProgress
	started, err := store.List(ListFilter{Status: &inProgress})
	if err != nil {
		t.Fatalf("failed to list by status: %v", err)
	}
	if len(started) != 1 || started[0].ID != b.ID {
		t.Errorf("expected only %s, got %v", b.ID, started)
	}

	project, err := store.List(ListFilter{ProjectID: &b.ProjectID})
	if err != nil {
		t.Fatalf("failed to list by project: %v", err)
	}
	if len(project) != 1 || project[0].ID != b.ID {
		t.Errorf("expected only %s, got %v", b.ID, project)
	}

	docs, err := store.List(ListFilter{TitleSubstring: "docs"})
	if err != nil {
		t.Fatalf("failed to list by title: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != a.ID {
		t.Errorf("expected only %s, got %v", a.ID, docs)
	}
}

func TestStore_List_RootsOnly(t *testing.T) {
	store := newTestStore(t)

	parent, _ := store.Create("Parent", CreateOptions{})
	if _, err := store.Create("Child", CreateOptions{ParentID: parent.ID}); err != nil {
		t.Fatalf("failed to create child: %v", err)
	}

	root := ""
	roots, err := store.List(ListFilter{ParentID: &root})
	if err != nil {
		t.Fatalf("failed to list roots: %v", err)
	}
	if len(roots) != 1 || roots[0].ID != parent.ID {
		t.Errorf("expected only %s, got %v", parent.ID, roots)
	}
}

func TestStore_Ready(t *testing.T) {
	store := newTestStore(t)

	blocker, _ := store.Create("Blocker", CreateOptions{})
	blocked, _ := store.Create("Blocked", CreateOptions{Dependencies: []string{blocker.ID}})
	urgent, _ := store.Create("Urgent", CreateOptions{Priority: PriorityPtr(PriorityHigh)})

	ready, err := store.Ready(0)
	if err != nil {
		t.Fatalf("failed to list ready: %v", err)
	}
	if len(ready) != 2 {
		t.Fatalf("expected 2 ready todos, got %d", len(ready))
	}
	if ready[0].ID != urgent.ID {
		t.Errorf("expected high priority first, got %s", ready[0].ID)
	}

	// Completing the blocker unblocks the dependent.
	if _, _, err := store.Complete(blocker.ID, ""); err != nil {
		t.Fatalf("failed to complete blocker: %v", err)
	}
	ready, err = store.Ready(0)
	if err != nil {
		t.Fatalf("failed to list ready: %v", err)
	}
	found := false
	for _, item := range ready {
		if item.ID == blocked.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s to become ready", blocked.ID)
	}
}

func TestStore_ReadOnly(t *testing.T) {
	store := newTestStore(t)
	store.readOnly = true

	_, err := store.Create("nope", CreateOptions{})
	if !errors.Is(err, ErrReadOnlyStore) {
		t.Fatalf("expected ErrReadOnlyStore, got %v", err)
	}
}
