package registry_test

import (
	"testing"

	"github.com/EmbarkStudios/spdx/internal/registry"
)

func TestTablesAreSorted(t *testing.T) {
	for i := 1; i < len(registry.Licenses); i++ {
		if registry.Licenses[i-1].Name >= registry.Licenses[i].Name {
			t.Fatalf("license table out of order at %d: %q >= %q",
				i, registry.Licenses[i-1].Name, registry.Licenses[i].Name)
		}
	}
	for i := 1; i < len(registry.Exceptions); i++ {
		if registry.Exceptions[i-1].Name >= registry.Exceptions[i].Name {
			t.Fatalf("exception table out of order at %d: %q >= %q",
				i, registry.Exceptions[i-1].Name, registry.Exceptions[i].Name)
		}
	}
}

func TestFindLicense(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"MIT", true},
		{"Apache-2.0", true},
		{"GPL-2.0-only", true},
		{"NOASSERTION", true},
		{"NONE", true},
		// Один завершающий плюс отбрасывается перед поиском
		{"Apache-2.0+", true},
		{"mit", false},
		{"Nope", false},
		{"", false},
	}
	for _, tc := range tests {
		idx, ok := registry.FindLicense(tc.name)
		if ok != tc.ok {
			t.Errorf("FindLicense(%q): expected ok=%v, got %v", tc.name, tc.ok, ok)
			continue
		}
		if ok {
			want := tc.name
			if want == "Apache-2.0+" {
				want = "Apache-2.0"
			}
			if registry.Licenses[idx].Name != want {
				t.Errorf("FindLicense(%q): resolved to %q", tc.name, registry.Licenses[idx].Name)
			}
		}
	}
}

func TestFindException(t *testing.T) {
	idx, ok := registry.FindException("LLVM-exception")
	if !ok || registry.Exceptions[idx].Name != "LLVM-exception" {
		t.Fatalf("FindException(LLVM-exception): got %d, %v", idx, ok)
	}
	if _, ok := registry.FindException("MIT"); ok {
		t.Error("A license name must not resolve as an exception")
	}
}

func TestGnuVariantsPresent(t *testing.T) {
	// У каждой голой версионной GNU-формы должны существовать -only и
	// -or-later, иначе лексеру некуда разрешать устаревшие написания
	bare := []string{
		"GPL-1.0", "GPL-2.0", "GPL-3.0",
		"AGPL-1.0", "AGPL-3.0",
		"LGPL-2.0", "LGPL-2.1", "LGPL-3.0",
		"GFDL-1.1", "GFDL-1.2", "GFDL-1.3",
		"GFDL-1.1-invariants", "GFDL-1.2-invariants", "GFDL-1.3-invariants",
	}
	for _, name := range bare {
		for _, suffix := range []string{"-only", "-or-later"} {
			if _, ok := registry.FindLicense(name + suffix); !ok {
				t.Errorf("%s: missing %s variant", name, suffix)
			}
		}
	}
}

func TestFindImprecise(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		matched int
		ok      bool
	}{
		{"mit", "MIT", 3, true},
		{"MIT", "MIT", 3, true},
		{"apache", "Apache-2.0", 6, true},
		{"Apache License, Version 2.0", "Apache-2.0", 27, true},
		// Длинный синоним побеждает короткий префикс
		{"gplv2 or something", "GPL-2.0", 5, true},
		{"gpl", "GPL-3.0", 3, true},
		{"unrelated", "", 0, false},
	}
	for _, tc := range tests {
		idx, matched, ok := registry.FindImprecise(tc.text)
		if ok != tc.ok {
			t.Errorf("FindImprecise(%q): expected ok=%v, got %v", tc.text, tc.ok, ok)
			continue
		}
		if !ok {
			continue
		}
		if registry.Licenses[idx].Name != tc.want || matched != tc.matched {
			t.Errorf("FindImprecise(%q): got %s over %d bytes, expected %s over %d",
				tc.text, registry.Licenses[idx].Name, matched, tc.want, tc.matched)
		}
	}
}
