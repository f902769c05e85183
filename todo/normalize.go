package todo

import (
	"fmt"
	"strings"
)

func normalizeStatusInput(status Status) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return normalized, nil
}

func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(string(priority))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return normalized, nil
}

func normalizeWorkStateInput(state WorkState) (WorkState, error) {
	normalized := WorkState(strings.ToLower(strings.TrimSpace(string(state))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWorkState, state)
	}
	return normalized, nil
}
