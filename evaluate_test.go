package spdx_test

import (
	"testing"

	"github.com/EmbarkStudios/spdx"
)

// mustLicensees разбирает список принимаемых лицензий
func mustLicensees(t *testing.T, names ...string) []spdx.Licensee {
	t.Helper()
	out := make([]spdx.Licensee, 0, len(names))
	for _, name := range names {
		lic, err := spdx.ParseLicensee(name)
		if err != nil {
			t.Fatalf("licensee %q: %v", name, err)
		}
		out = append(out, lic)
	}
	return out
}

// anyOf строит предикат «хотя бы один из лицензиатов удовлетворяет»
func anyOf(accepted []spdx.Licensee) func(spdx.LicenseReq) bool {
	return func(req spdx.LicenseReq) bool {
		for _, lic := range accepted {
			if lic.Satisfies(req) {
				return true
			}
		}
		return false
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr     string
		accepted []string
		want     bool
	}{
		{"MIT", []string{"MIT"}, true},
		{"MIT", []string{"ISC"}, false},
		{"MIT OR Apache-2.0", []string{"Apache-2.0"}, true},
		{"MIT AND Apache-2.0", []string{"Apache-2.0"}, false},
		{"MIT AND Apache-2.0", []string{"Apache-2.0", "MIT"}, true},
		{"(MIT OR ISC) AND Zlib", []string{"ISC", "Zlib"}, true},
		{"(MIT OR ISC) AND Zlib", []string{"ISC"}, false},
		{"Apache-2.0 WITH LLVM-exception", []string{"Apache-2.0"}, false},
		{"Apache-2.0 WITH LLVM-exception", []string{"Apache-2.0 WITH LLVM-exception"}, true},
		{"Apache-2.0 WITH LLVM-exception OR MIT", []string{"MIT"}, true},
		{"LicenseRef-Custom", []string{"LicenseRef-Custom"}, true},
		{"LicenseRef-Custom", []string{"LicenseRef-Other"}, false},
		// or-later в требовании принимает более поздние версии
		{"Apache-1.0+", []string{"Apache-2.0"}, true},
		{"GPL-2.0-or-later", []string{"GPL-3.0-only"}, true},
		{"GPL-3.0-only", []string{"GPL-2.0-only"}, false},
	}

	for _, tc := range tests {
		expr, err := spdx.Parse(tc.expr)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.expr, err)
		}
		accepted := mustLicensees(t, tc.accepted...)
		if got := expr.Evaluate(anyOf(accepted)); got != tc.want {
			t.Errorf("Evaluate(%q) with %v: expected %v, got %v",
				tc.expr, tc.accepted, tc.want, got)
		}
	}
}

func TestEvaluateWithFailures(t *testing.T) {
	expr, err := spdx.Parse("MIT AND (Apache-2.0 OR ISC) AND Zlib")
	if err != nil {
		t.Fatal(err)
	}
	accepted := mustLicensees(t, "MIT", "ISC")

	failed, ok := expr.EvaluateWithFailures(anyOf(accepted))
	if ok {
		t.Fatal("Expected the expression to be unsatisfied")
	}

	// Отклонённые требования собираются в порядке исходного текста,
	// включая Apache-2.0, чью OR-ветвь спасла ISC
	want := []string{"Apache-2.0", "Zlib"}
	if len(failed) != len(want) {
		t.Fatalf("Expected %d failures, got %d: %v", len(want), len(failed), failed)
	}
	for i, f := range failed {
		if f.Req.String() != want[i] {
			t.Errorf("Failure %d: expected %s, got %s", i, want[i], f.Req)
		}
	}
}

func TestEvaluate_PredicateOrder(t *testing.T) {
	expr, err := spdx.Parse("MIT OR ISC OR Zlib")
	if err != nil {
		t.Fatal(err)
	}
	var seen []string
	expr.Evaluate(func(req spdx.LicenseReq) bool {
		seen = append(seen, req.String())
		return true
	})
	want := []string{"MIT", "ISC", "Zlib"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Predicate call order: expected %v, got %v", want, seen)
		}
	}
}
