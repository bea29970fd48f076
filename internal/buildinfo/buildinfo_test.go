package buildinfo

import "testing"

func TestShortAndLine(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "dev", "unknown", "unknown"
	if got := Line(); got != "vnaplot dev" {
		t.Fatalf("Line() = %q, want %q", got, "vnaplot dev")
	}
	Commit = "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q, want abc123", got)
	}
	Version, Date = "v1.2.0", "2026-10-19"
	if got := Line(); got != "vnaplot v1.2.0 2026-10-19" {
		t.Fatalf("Line() = %q", got)
	}
}
