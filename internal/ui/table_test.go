package ui

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"abc", "Fix login"},
			{"defg1234", "Ship"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header line, got %q", lines[0])
	}
	// Columns align: TITLE starts at the same offset in every line.
	offset := strings.Index(lines[0], "TITLE")
	if offset < 0 {
		t.Fatalf("missing TITLE header in %q", lines[0])
	}
	if !strings.HasPrefix(lines[1][offset:], "Fix login") {
		t.Errorf("expected aligned cell at offset %d, got %q", offset, lines[1])
	}
	if !strings.HasPrefix(lines[2][offset:], "Ship") {
		t.Errorf("expected aligned cell at offset %d, got %q", offset, lines[2])
	}
}

func TestFormatTable_NormalizesNewlines(t *testing.T) {
	got := FormatTable([]string{"TITLE"}, [][]string{{"line one\nline two"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected newlines collapsed into cells, got %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := TruncateTableCell(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if visibleWidth(got) != cellWidthCap {
		t.Errorf("expected width %d, got %d", cellWidthCap, visibleWidth(got))
	}

	if got := TruncateTableCell("short"); got != "short" {
		t.Errorf("expected short cell unchanged, got %q", got)
	}
}

func TestTruncateTableCell_PreservesANSI(t *testing.T) {
	styled := "\x1b[1m" + strings.Repeat("b", 80) + "\x1b[0m"
	got := TruncateTableCell(styled)
	if !strings.HasPrefix(got, "\x1b[1m") {
		t.Errorf("expected ANSI prefix preserved, got %q", got)
	}
	if visibleWidth(got) != cellWidthCap {
		t.Errorf("expected display width %d, got %d", cellWidthCap, visibleWidth(got))
	}
}
