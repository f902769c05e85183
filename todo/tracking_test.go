package todo

import (
	"errors"
	"testing"
)

func TestStore_StartPauseComplete(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create("Track me", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	started, activity, err := store.Start(item.ID, "begin")
	if err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	if started.WorkState != WorkStateActive {
		t.Errorf("expected work state active, got %q", started.WorkState)
	}
	if started.Status != StatusInProgress {
		t.Errorf("expected status in_progress, got %q", started.Status)
	}
	if activity.Type != ActivityStarted || activity.Note != "begin" {
		t.Errorf("unexpected activity %+v", activity)
	}

	paused, activity, err := store.Pause(item.ID, "")
	if err != nil {
		t.Fatalf("failed to pause: %v", err)
	}
	if paused.WorkState != WorkStatePaused {
		t.Errorf("expected work state paused, got %q", paused.WorkState)
	}
	if activity.WorkTime == nil {
		t.Error("expected pause to record a work time")
	}

	completed, _, err := store.Complete(item.ID, "done")
	if err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	if completed.Status != StatusCompleted || completed.WorkState != WorkStateCompleted {
		t.Errorf("expected completed, got %q/%q", completed.Status, completed.WorkState)
	}

	activities, err := store.Activities(item.ID)
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}
	wantTypes := []ActivityType{ActivityStarted, ActivityPaused, ActivityCompleted}
	for i, want := range wantTypes {
		if activities[i].Type != want {
			t.Errorf("activity %d: expected %q, got %q", i, want, activities[i].Type)
		}
	}
}

func TestStore_Start_Twice(t *testing.T) {
	store := newTestStore(t)

	item, _ := store.Create("Track me", CreateOptions{})
	if _, _, err := store.Start(item.ID, ""); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	_, _, err := store.Start(item.ID, "")
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}

	// The failed start did not append an activity.
	activities, err := store.Activities(item.ID)
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("expected 1 activity, got %d", len(activities))
	}
}

func TestStore_Discard(t *testing.T) {
	store := newTestStore(t)

	item, _ := store.Create("Track me", CreateOptions{})
	if _, _, err := store.Start(item.ID, ""); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	discarded, activity, err := store.Discard(item.ID, "wrong approach")
	if err != nil {
		t.Fatalf("failed to discard: %v", err)
	}
	if discarded.WorkState != WorkStateActive {
		t.Errorf("discard changed work state to %q", discarded.WorkState)
	}
	if activity.Type != ActivityDiscarded || activity.PreviousState != WorkStateActive {
		t.Errorf("unexpected activity %+v", activity)
	}
}

func TestStore_Reopen(t *testing.T) {
	store := newTestStore(t)

	item, _ := store.Create("Track me", CreateOptions{})
	if _, _, err := store.Complete(item.ID, ""); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	reopened, err := store.Reopen(item.ID)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if reopened.Status != StatusPending || reopened.WorkState != WorkStateIdle {
		t.Errorf("expected pending/idle, got %q/%q", reopened.Status, reopened.WorkState)
	}

	_, err = store.Reopen(item.ID)
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestStore_AssignActivityPeriod(t *testing.T) {
	store := newTestStore(t)

	item, _ := store.Create("Track me", CreateOptions{})
	_, activity, err := store.Start(item.ID, "")
	if err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	if err := store.AssignActivityPeriod(activity.ID, "period-1"); err != nil {
		t.Fatalf("failed to assign period: %v", err)
	}
	activities, err := store.Activities(item.ID)
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if activities[0].WorkPeriodID != "period-1" {
		t.Errorf("expected period 'period-1', got %q", activities[0].WorkPeriodID)
	}

	if err := store.ClearActivityPeriod(activity.ID); err != nil {
		t.Fatalf("failed to clear period: %v", err)
	}
	activities, _ = store.Activities(item.ID)
	if activities[0].WorkPeriodID != "" {
		t.Errorf("expected cleared period, got %q", activities[0].WorkPeriodID)
	}
}

func TestStore_AssignActivityPeriod_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.AssignActivityPeriod("missing", "period-1")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
