package ui

import "github.com/charmbracelet/lipgloss"

var (
	statusPendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	statusCompletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	workIdleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	workActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	workPausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	workCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// StyleStatus renders a todo status with its display color.
func StyleStatus(status string) string {
	if !ansiEnabled() {
		return status
	}
	switch status {
	case "pending":
		return statusPendingStyle.Render(status)
	case "in_progress":
		return statusInProgressStyle.Render(status)
	case "completed":
		return statusCompletedStyle.Render(status)
	default:
		return status
	}
}

// StyleWorkState renders a work state with its display color.
func StyleWorkState(state string) string {
	if !ansiEnabled() {
		return state
	}
	switch state {
	case "idle":
		return workIdleStyle.Render(state)
	case "active":
		return workActiveStyle.Render(state)
	case "paused":
		return workPausedStyle.Render(state)
	case "completed":
		return workCompletedStyle.Render(state)
	default:
		return state
	}
}
