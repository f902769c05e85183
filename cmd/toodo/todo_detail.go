package main

import (
	"fmt"
	"strings"

	"github.com/SuzumiyaAoba/toodo/internal/markdown"
	"github.com/SuzumiyaAoba/toodo/internal/ui"
	"github.com/SuzumiyaAoba/toodo/todo"
	"github.com/muesli/reflow/wordwrap"
)

const todoDetailLineWidth = 80

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(item todo.Todo, tags []todo.Tag, plain bool) {
	fmt.Printf("ID:         %s\n", item.ID)
	fmt.Printf("Title:      %s\n", item.Title)
	fmt.Printf("Status:     %s\n", item.Status)
	fmt.Printf("Work state: %s\n", item.WorkState)
	fmt.Printf("Priority:   %s\n", item.Priority)
	fmt.Printf("Worked:     %s\n", ui.FormatWorkDuration(item.TotalWorkTime))
	fmt.Printf("Created:    %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:    %s\n", item.UpdatedAt.Format("2006-01-02 15:04:05"))

	if item.DueDate != nil {
		fmt.Printf("Due:        %s\n", ui.FormatDate(*item.DueDate))
	}
	if item.ParentID != "" {
		fmt.Printf("Parent:     %s\n", item.ParentID)
	}
	if item.ProjectID != "" {
		fmt.Printf("Project:    %s\n", item.ProjectID)
	}
	if len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		fmt.Printf("Tags:       %s\n", strings.Join(names, ", "))
	}

	if item.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTodoDescription(item.Description, plain))
	}
}

func formatTodoDescription(value string, plain bool) string {
	if plain {
		return wordwrap.String(value, todoDetailLineWidth)
	}
	rendered := markdown.Render(todoDetailLineWidth, 0, value)
	if strings.TrimSpace(rendered) == "" {
		return "-"
	}
	return rendered
}
