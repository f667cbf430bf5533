package spdx_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/EmbarkStudios/spdx"
)

func minimizeStrings(t *testing.T, exprText string, accepted []string) ([]string, error) {
	t.Helper()
	expr, err := spdx.Parse(exprText)
	if err != nil {
		t.Fatalf("parse %q: %v", exprText, err)
	}
	reqs, err := expr.MinimizedRequirements(mustLicensees(t, accepted...))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, req.String())
	}
	return out, nil
}

func expectMinimized(t *testing.T, exprText string, accepted, want []string) {
	t.Helper()
	got, err := minimizeStrings(t, exprText, accepted)
	if err != nil {
		t.Fatalf("minimize %q: %v", exprText, err)
	}
	if len(got) != len(want) {
		t.Fatalf("minimize %q: expected %v, got %v", exprText, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("minimize %q: expected %v, got %v", exprText, want, got)
			return
		}
	}
}

func TestMinimize(t *testing.T) {
	// Дизъюнкция сводится к одному лицензиату
	expectMinimized(t, "MIT OR Apache-2.0",
		[]string{"Apache-2.0", "MIT"},
		[]string{"Apache-2.0"})

	// Конъюнкция требует обоих, лишний BSD-3-Clause отбрасывается
	expectMinimized(t, "MIT AND Apache-2.0",
		[]string{"BSD-3-Clause", "MIT", "Apache-2.0"},
		[]string{"MIT", "Apache-2.0"})

	// Один лицензиат может закрыть несколько требований
	expectMinimized(t, "GPL-2.0-or-later OR GPL-3.0-only",
		[]string{"MIT", "GPL-3.0-only"},
		[]string{"GPL-3.0-only"})

	expectMinimized(t, "(MIT OR ISC) AND (Apache-2.0 OR ISC)",
		[]string{"ISC", "MIT", "Apache-2.0"},
		[]string{"ISC"})

	// Поиск идёт по возрастанию маски, поэтому при хвостовом ISC
	// раньше находится пара из первых двух лицензиатов
	expectMinimized(t, "(MIT OR ISC) AND (Apache-2.0 OR ISC)",
		[]string{"MIT", "Apache-2.0", "ISC"},
		[]string{"MIT", "Apache-2.0"})

	// Дубликаты в списке принимаемого не влияют на результат
	expectMinimized(t, "MIT",
		[]string{"MIT", "MIT", "MIT"},
		[]string{"MIT"})
}

func TestMinimize_Priority(t *testing.T) {
	// При равной мощности побеждает более ранний лицензиат
	expectMinimized(t, "MIT OR ISC OR Zlib",
		[]string{"Zlib", "ISC", "MIT"},
		[]string{"Zlib"})
	expectMinimized(t, "MIT OR ISC OR Zlib",
		[]string{"MIT", "ISC", "Zlib"},
		[]string{"MIT"})
}

func TestMinimize_Unmet(t *testing.T) {
	_, err := minimizeStrings(t, "MIT AND Apache-2.0", []string{"MIT", "ISC"})
	if !errors.Is(err, spdx.ErrRequirementsUnmet) {
		t.Fatalf("Expected ErrRequirementsUnmet, got %v", err)
	}

	_, err = minimizeStrings(t, "MIT", []string{"ISC"})
	if !errors.Is(err, spdx.ErrRequirementsUnmet) {
		t.Fatalf("Expected ErrRequirementsUnmet with no relevant licensees, got %v", err)
	}
}

func TestMinimize_TooManyRequirements(t *testing.T) {
	// 65 различных требований, каждое закрыто собственным лицензиатом
	terms := make([]string, 65)
	for i := range terms {
		terms[i] = fmt.Sprintf("LicenseRef-n%d", i)
	}
	exprText := strings.Join(terms, " AND ")

	got, err := minimizeStrings(t, exprText, terms)
	if err == nil {
		t.Fatalf("Expected TooManyRequirementsError, got %v", got)
	}
	var tooMany *spdx.TooManyRequirementsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("Expected *TooManyRequirementsError, got %v", err)
	}
	if tooMany.Count != 65 {
		t.Errorf("Expected count 65, got %d", tooMany.Count)
	}

	// Ровно 64 — ещё в пределах поиска
	got, err = minimizeStrings(t, strings.Join(terms[:64], " OR "), terms[:64])
	if err != nil {
		t.Fatalf("64 licensees must still minimize: %v", err)
	}
	if len(got) != 1 || got[0] != "LicenseRef-n0" {
		t.Errorf("Expected the first licensee to win, got %v", got)
	}
}
