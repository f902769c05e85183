package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/SuzumiyaAoba/toodo/internal/age"
	"github.com/SuzumiyaAoba/toodo/internal/ui"
	"github.com/SuzumiyaAoba/toodo/todo"
)

// printTodoTable prints todos in a table format.
func printTodoTable(todos []todo.Todo, prefixLengths map[string]int, now time.Time) {
	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return
	}

	fmt.Print(formatTodoTable(todos, prefixLengths, ui.HighlightID, now))
}

func formatTodoTable(todos []todo.Todo, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "WORK", "AGE", "WORKED", "TITLE"}, len(todos))

	if prefixLengths == nil {
		prefixLengths = todoIDPrefixLengths(todos)
	}

	for _, item := range todos {
		prefixLen := prefixLengths[strings.ToLower(item.ID)]
		row := []string{
			highlight(item.ID, prefixLen),
			string(item.Priority),
			ui.StyleStatus(string(item.Status)),
			ui.StyleWorkState(string(item.WorkState)),
			formatTodoAge(item, now),
			formatTodoWorked(item, now),
			ui.TruncateTableCell(item.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func todoIDPrefixLengths(todos []todo.Todo) map[string]int {
	index := todo.NewIDIndex(todos)
	return index.PrefixLengths()
}

func formatTodoAge(item todo.Todo, now time.Time) string {
	value, ok := age.AgeData(item.CreatedAt, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(value)
}

func formatTodoWorked(item todo.Todo, now time.Time) string {
	lastChange := time.Time{}
	if item.LastStateChangeAt != nil {
		lastChange = *item.LastStateChangeAt
	}
	value, ok := age.WorkedData(item.TotalWorkTime, lastChange, item.WorkState == todo.WorkStateActive, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(value)
}

// printActivityTable prints time-tracking events, oldest first.
func printActivityTable(activities []todo.WorkActivity) {
	builder := ui.NewTableBuilder([]string{"ID", "TYPE", "FROM", "TIME", "PERIOD", "AT", "NOTE"}, len(activities))

	for _, activity := range activities {
		workTime := "-"
		if activity.WorkTime != nil {
			workTime = ui.FormatWorkDuration(*activity.WorkTime)
		}
		periodID := activity.WorkPeriodID
		if periodID == "" {
			periodID = "-"
		}
		builder.AddRow([]string{
			activity.ID,
			string(activity.Type),
			string(activity.PreviousState),
			workTime,
			periodID,
			activity.CreatedAt.Format("2006-01-02 15:04:05"),
			ui.TruncateTableCell(activity.Note),
		})
	}

	fmt.Print(builder.String())
}

// printTrackingResult summarizes a state transition on stdout.
func printTrackingResult(item *todo.Todo, activity *todo.WorkActivity) {
	switch activity.Type {
	case todo.ActivityStarted:
		fmt.Printf("Started %s: %s\n", item.ID, item.Title)
	case todo.ActivityPaused:
		fmt.Printf("Paused %s: %s (+%s, total %s)\n", item.ID, item.Title,
			formatActivityTime(activity), ui.FormatWorkDuration(item.TotalWorkTime))
	case todo.ActivityCompleted:
		fmt.Printf("Completed %s: %s (total %s)\n", item.ID, item.Title,
			ui.FormatWorkDuration(item.TotalWorkTime))
	case todo.ActivityDiscarded:
		fmt.Printf("Discarded work on %s: %s (+%s)\n", item.ID, item.Title,
			formatActivityTime(activity))
	}
}

func formatActivityTime(activity *todo.WorkActivity) string {
	if activity.WorkTime == nil {
		return "0s"
	}
	return ui.FormatWorkDuration(*activity.WorkTime)
}
