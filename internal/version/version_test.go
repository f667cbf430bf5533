package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestBanner(t *testing.T) {
	// отключаем цвет, чтобы сравнивать голый текст
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	got := Banner("3.8")
	want := "spdx " + Version + " with license list 3.8"
	if got != want {
		t.Fatalf("Banner() = %q, want %q", got, want)
	}
}

func TestBanner_BuildMetadata(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	// Только коммит, без даты.
	GitCommit, BuildDate = "abc123", ""
	if got := Banner("3.8"); !strings.Contains(got, "(abc123)") {
		t.Fatalf("Banner() = %q, want commit in parens", got)
	}

	// Commit and date together.
	GitCommit, BuildDate = "abc123", "2026-08-29"
	if got := Banner("3.8"); !strings.Contains(got, "(abc123, 2026-08-29)") {
		t.Fatalf("Banner() = %q, want commit and date in parens", got)
	}

	// Дата без коммита не печатается.
	GitCommit, BuildDate = "", "2026-08-29"
	if got := Banner("3.8"); strings.Contains(got, "2026-08-29") {
		t.Fatalf("Banner() = %q, date must require a commit", got)
	}
}
