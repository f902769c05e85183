package main

import (
	"testing"

	"github.com/SuzumiyaAoba/toodo/todo"
)

func TestFormatDepTree(t *testing.T) {
	tree := &todo.DepTreeNode{
		Todo: &todo.Todo{ID: "root1234", Title: "Ship", Status: todo.StatusInProgress},
		Children: []*todo.DepTreeNode{
			{
				Todo: &todo.Todo{ID: "chld1234", Title: "Build", Status: todo.StatusCompleted},
				Children: []*todo.DepTreeNode{
					{Todo: &todo.Todo{ID: "leaf1234", Title: "Compile", Status: todo.StatusCompleted}},
				},
			},
			{Todo: &todo.Todo{ID: "chld5678", Title: "Test", Status: todo.StatusPending}},
		},
	}

	got := formatDepTree(tree)
	want := "[~] Ship (root1234)\n" +
		"├── [x] Build (chld1234)\n" +
		"│   └── [x] Compile (leaf1234)\n" +
		"└── [ ] Test (chld5678)\n"

	if got != want {
		t.Fatalf("unexpected tree rendering\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestStatusIcon(t *testing.T) {
	cases := []struct {
		status todo.Status
		want   string
	}{
		{todo.StatusPending, "[ ]"},
		{todo.StatusInProgress, "[~]"},
		{todo.StatusCompleted, "[x]"},
		{todo.Status("bogus"), "[?]"},
	}

	for _, tc := range cases {
		if got := statusIcon(tc.status); got != tc.want {
			t.Errorf("statusIcon(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
