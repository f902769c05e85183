package todo

import (
	"errors"
	"testing"
)

func TestIDIndex_Resolve(t *testing.T) {
	index := NewIDIndex([]Todo{
		{ID: "abc12345"},
		{ID: "abd67890"},
	})

	full, err := index.Resolve("abc")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if full != "abc12345" {
		t.Errorf("expected full ID, got %q", full)
	}

	// Prefixes are case-insensitive.
	if full, err = index.Resolve("ABD6"); err != nil || full != "abd67890" {
		t.Errorf("expected case-insensitive match, got %q, %v", full, err)
	}

	if _, err = index.Resolve("ab"); !errors.Is(err, ErrAmbiguousTodoIDPrefix) {
		t.Errorf("expected ErrAmbiguousTodoIDPrefix, got %v", err)
	}
	if _, err = index.Resolve("zzz"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if _, err = index.Resolve(""); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for empty prefix, got %v", err)
	}
}

func TestIDIndex_ResolveAll(t *testing.T) {
	index := NewIDIndex([]Todo{
		{ID: "abc12345"},
		{ID: "def67890"},
	})

	resolved, err := index.ResolveAll([]string{"abc", "def6"})
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if len(resolved) != 2 || resolved[0] != "abc12345" || resolved[1] != "def67890" {
		t.Errorf("unexpected resolution: %v", resolved)
	}

	if _, err = index.ResolveAll([]string{"abc", "zzz"}); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if _, err = index.ResolveAll(nil); err == nil {
		t.Error("expected error for empty prefix list")
	}
}

func TestIDIndex_PrefixLengths(t *testing.T) {
	index := NewIDIndex([]Todo{
		{ID: "abc12345"},
		{ID: "abd67890"},
		{ID: "xyz11111"},
	})

	lengths := index.PrefixLengths()
	if lengths["abc12345"] != 3 {
		t.Errorf("expected prefix length 3 for abc12345, got %d", lengths["abc12345"])
	}
	if lengths["xyz11111"] != 1 {
		t.Errorf("expected prefix length 1 for xyz11111, got %d", lengths["xyz11111"])
	}
}
