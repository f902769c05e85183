package jsonl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadFile_Missing(t *testing.T) {
	items, err := ReadFile[record](filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("read missing file: %v", err)
	}
	if items != nil {
		t.Errorf("expected nil for missing file, got %v", items)
	}
}

func TestWriteFileReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	want := []record{
		{Name: "alpha", Count: 1},
		{Name: "beta", Count: 2},
	}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadFile[record](path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	if err := WriteFile(path, []record{{Name: "old"}, {Name: "older"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, []record{{Name: "new"}}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	got, err := ReadFile[record](path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].Name != "new" {
		t.Errorf("expected single rewritten record, got %v", got)
	}
}

func TestRead_SkipsBlankLines(t *testing.T) {
	got, err := Read[record](strings.NewReader("{\"name\":\"a\"}\n\n{\"name\":\"b\"}\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}

func TestRead_ReportsLineNumber(t *testing.T) {
	_, err := Read[record](strings.NewReader("{\"name\":\"a\"}\nnot json\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected parse error naming line 2, got %v", err)
	}
}

func TestWithFileLock_RunsFn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.lock")
	ran := false
	err := WithFileLock(path, func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("with lock: %v", err)
	}
	if !ran {
		t.Error("expected fn to run")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected lock file to exist: %v", err)
	}
}
