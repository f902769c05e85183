// Package testsupport provides helpers for end-to-end CLI tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/SuzumiyaAoba/toodo/period"
	"github.com/SuzumiyaAoba/toodo/todo"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	toodoPath string
	buildErr  error
)

// BuildToodo builds the toodo binary once and returns its path.
func BuildToodo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "toodo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		toodoPath = filepath.Join(binDir, "toodo")
		cmd := exec.Command("go", "build", "-o", toodoPath, "./cmd/toodo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build toodo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return toodoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets an isolated HOME so global config cannot leak in, and
// colors are disabled for stable output.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TOODO", BuildToodo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "toodo"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTodoID finds a todo by title in a JSON listing and stores its ID in
// an env var.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TITLE VAR")
	}

	var items []todo.Todo
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse todo list: %v", err)
	}

	title := args[1]
	for _, item := range items {
		if item.Title == title {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("todo with title %q not found", title)
}

// CmdPeriodID finds a work period by name in a JSON listing and stores
// its ID in an env var.
func CmdPeriodID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("periodid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: periodid FILE NAME VAR")
	}

	var periods []period.WorkPeriod
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &periods); err != nil {
		ts.Fatalf("parse period list: %v", err)
	}

	name := args[1]
	for _, p := range periods {
		if p.Name == name {
			ts.Setenv(args[2], p.ID)
			return
		}
	}

	ts.Fatalf("period with name %q not found", name)
}

// CmdActivityID finds the first activity of a type in a JSON listing and
// stores its ID in an env var.
func CmdActivityID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("activityid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: activityid FILE TYPE VAR")
	}

	var activities []todo.WorkActivity
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &activities); err != nil {
		ts.Fatalf("parse activity list: %v", err)
	}

	activityType := todo.ActivityType(args[1])
	for _, activity := range activities {
		if activity.Type == activityType {
			ts.Setenv(args[2], activity.ID)
			return
		}
	}

	ts.Fatalf("activity with type %q not found", args[1])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
