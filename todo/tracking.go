package todo

import (
	"fmt"
	"time"
)

// Start begins (or resumes) time tracking for a todo.
func (s *Store) Start(id, note string) (*Todo, *WorkActivity, error) {
	return s.recordActivity(id, ActivityStarted, note)
}

// Pause suspends time tracking, banking the elapsed whole seconds.
func (s *Store) Pause(id, note string) (*Todo, *WorkActivity, error) {
	return s.recordActivity(id, ActivityPaused, note)
}

// Complete finishes time tracking and completes the todo.
func (s *Store) Complete(id, note string) (*Todo, *WorkActivity, error) {
	return s.recordActivity(id, ActivityCompleted, note)
}

// Discard records elapsed time without changing the work state.
func (s *Store) Discard(id, note string) (*Todo, *WorkActivity, error) {
	return s.recordActivity(id, ActivityDiscarded, note)
}

// recordActivity applies a time-tracking event to a todo and appends the
// resulting activity, all under one lock.
func (s *Store) recordActivity(id string, activityType ActivityType, note string) (*Todo, *WorkActivity, error) {
	var (
		updated  *Todo
		activity *WorkActivity
	)
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{id}, todos)
		if err != nil {
			return err
		}

		item := todoMapByID(todos)[resolved[0]]
		activity, err = applyActivity(item, activityType, note, time.Now())
		if err != nil {
			return err
		}
		updated = item

		if err := s.writeTodos(todos); err != nil {
			return err
		}

		activities, err := s.readActivities()
		if err != nil {
			return err
		}
		activities = append(activities, *activity)
		return s.writeActivities(activities)
	})
	if err != nil {
		return nil, nil, err
	}

	return updated, activity, nil
}

// Reopen resets a completed todo to pending with an idle work state. The
// accrued work time is preserved.
func (s *Store) Reopen(id string) (*Todo, error) {
	var updated *Todo
	err := s.update(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{id}, todos)
		if err != nil {
			return err
		}

		item := todoMapByID(todos)[resolved[0]]
		if err := applyReopen(item, time.Now()); err != nil {
			return err
		}
		updated = item

		return s.writeTodos(todos)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Activities returns the time-tracking events for a todo, oldest first.
func (s *Store) Activities(todoID string) ([]WorkActivity, error) {
	var result []WorkActivity
	err := s.withLock(func() error {
		todos, err := s.readTodos()
		if err != nil {
			return err
		}

		resolved, err := resolveTodoIDsWithTodos([]string{todoID}, todos)
		if err != nil {
			return err
		}

		activities, err := s.readActivities()
		if err != nil {
			return err
		}

		for _, activity := range activities {
			if activity.TodoID == resolved[0] {
				result = append(result, activity)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListActivities returns every time-tracking event in the store.
func (s *Store) ListActivities() ([]WorkActivity, error) {
	var activities []WorkActivity
	err := s.withLock(func() error {
		var err error
		activities, err = s.readActivities()
		return err
	})
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// AssignActivityPeriod associates an activity with a work period. The
// association carries no interval constraint: the activity's timestamp
// need not fall inside the period.
func (s *Store) AssignActivityPeriod(activityID, periodID string) error {
	return s.setActivityPeriod(activityID, periodID)
}

// ClearActivityPeriod removes an activity's work period association.
func (s *Store) ClearActivityPeriod(activityID string) error {
	return s.setActivityPeriod(activityID, "")
}

func (s *Store) setActivityPeriod(activityID, periodID string) error {
	return s.update(func() error {
		activities, err := s.readActivities()
		if err != nil {
			return err
		}

		found := false
		for i := range activities {
			if activities[i].ID == activityID {
				activities[i].WorkPeriodID = periodID
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrActivityNotFound, activityID)
		}

		return s.writeActivities(activities)
	})
}
