package spdx_test

import (
	"errors"
	"testing"

	"github.com/EmbarkStudios/spdx"
)

// expectLicenseeError проверяет причину отказа разбора лицензиата
func expectLicenseeError(t *testing.T, input string, mode spdx.ParseMode, kind spdx.ReasonKind) {
	t.Helper()
	_, err := spdx.ParseLicenseeWithMode(input, mode)
	if err == nil {
		t.Fatalf("Input %q: expected an error", input)
	}
	var perr *spdx.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Input %q: expected *ParseError, got %T", input, err)
	}
	if perr.Reason.Kind != kind {
		t.Errorf("Input %q: expected reason %v, got %v (%s)", input, kind, perr.Reason.Kind, perr.Reason)
	}
}

func TestParseLicensee(t *testing.T) {
	valid := []string{
		"MIT",
		"Apache-2.0",
		"Apache-2.0 WITH LLVM-exception",
		"Apache-2.0 WITH AdditionRef-Extra",
		"LicenseRef-Custom",
		"DocumentRef-Doc:LicenseRef-Custom",
		"GPL-2.0-only",
		"GPL-2.0-or-later",
		"GFDL-1.2-invariants-only",
	}
	for _, input := range valid {
		lic, err := spdx.ParseLicensee(input)
		if err != nil {
			t.Errorf("Input %q: unexpected error: %v", input, err)
			continue
		}
		if lic.String() != input {
			t.Errorf("Input %q: round-trips as %q", input, lic)
		}
	}
}

func TestParseLicensee_Rejects(t *testing.T) {
	// Лицензиат — это одна лицензия, не выражение
	expectLicenseeError(t, "", spdx.Strict, spdx.ReasonEmpty)
	expectLicenseeError(t, "MIT OR ISC", spdx.Strict, spdx.ReasonUnexpected)
	expectLicenseeError(t, "AND", spdx.Strict, spdx.ReasonUnexpected)
	expectLicenseeError(t, "(MIT)", spdx.Strict, spdx.ReasonUnexpected)
	expectLicenseeError(t, "Apache-2.0 WITH", spdx.Strict, spdx.ReasonUnexpected)
	expectLicenseeError(t, "Apache-2.0 WITH MIT", spdx.Strict, spdx.ReasonUnexpected)
	// Плюс не имеет смысла у лицензиата
	expectLicenseeError(t, "Apache-2.0+", spdx.Strict, spdx.ReasonUnexpected)
	expectLicenseeError(t, "GPL-2.0-only+", spdx.Strict, spdx.ReasonGnuNoPlus)
	expectLicenseeError(t, "GPL-2.0-only+", spdx.Lax, spdx.ReasonGnuPlusWithSuffix)
	// Вариант no-invariants не бывает предложением лицензиата
	expectLicenseeError(t, "GFDL-1.2-no-invariants-only", spdx.Strict, spdx.ReasonUnexpected)
}

func TestLicenseeSatisfies_Gnu(t *testing.T) {
	tests := []struct {
		licensee string
		req      string
		want     bool
	}{
		{"GPL-2.0-only", "GPL-2.0-only", true},
		{"GPL-2.0-only", "GPL-2.0-or-later", true},
		{"GPL-3.0-only", "GPL-2.0-or-later", true},
		{"GPL-3.0-or-later", "GPL-2.0-or-later", true},
		{"GPL-2.0-only", "GPL-3.0-or-later", false},
		{"GPL-2.0-only", "GPL-3.0-only", false},
		// Разные семейства GNU не пересекаются
		{"LGPL-3.0-only", "GPL-2.0-or-later", false},
		{"AGPL-3.0-only", "GPL-2.0-or-later", false},
		// Позиция по инвариантным секциям GFDL должна совпадать точно
		{"GFDL-1.3-invariants-only", "GFDL-1.2-invariants-or-later", true},
		{"GFDL-1.3-only", "GFDL-1.2-invariants-or-later", false},
		{"GFDL-1.3-invariants-only", "GFDL-1.2-or-later", false},
	}

	for _, tc := range tests {
		lic, err := spdx.ParseLicensee(tc.licensee)
		if err != nil {
			t.Fatalf("licensee %q: %v", tc.licensee, err)
		}
		req := requirement(t, tc.req)
		if got := lic.Satisfies(req); got != tc.want {
			t.Errorf("%s satisfies %s: expected %v, got %v", tc.licensee, tc.req, tc.want, got)
		}
	}
}

// requirement разбирает одиночное требование через выражение
func requirement(t *testing.T, text string) spdx.LicenseReq {
	t.Helper()
	expr, err := spdx.Parse(text)
	if err != nil {
		t.Fatalf("requirement %q: %v", text, err)
	}
	for req := range expr.Requirements() {
		return req.Req
	}
	t.Fatalf("requirement %q: expression has no requirements", text)
	return spdx.LicenseReq{}
}

func TestLicenseeSatisfies_Versions(t *testing.T) {
	tests := []struct {
		licensee string
		req      string
		want     bool
	}{
		{"Apache-2.0", "Apache-2.0", true},
		{"Apache-2.0", "Apache-1.0+", true},
		{"Apache-1.0", "Apache-2.0+", false},
		{"Apache-2.0", "Apache-1.0", false},
		{"CC-BY-NC-ND-3.0", "CC-BY-NC-ND-2.5+", true},
		// Другая ветвь семейства CC не подходит
		{"CC-BY-ND-3.0", "CC-BY-NC-ND-2.5+", false},
		// Без + совпадение только точное
		{"MIT", "MIT", true},
		{"ISC", "MIT", false},
	}

	for _, tc := range tests {
		lic, err := spdx.ParseLicensee(tc.licensee)
		if err != nil {
			t.Fatalf("licensee %q: %v", tc.licensee, err)
		}
		req := requirement(t, tc.req)
		if got := lic.Satisfies(req); got != tc.want {
			t.Errorf("%s satisfies %s: expected %v, got %v", tc.licensee, tc.req, tc.want, got)
		}
	}
}

func TestLicenseeSatisfies_Additions(t *testing.T) {
	tests := []struct {
		licensee string
		req      string
		want     bool
	}{
		{"Apache-2.0 WITH LLVM-exception", "Apache-2.0 WITH LLVM-exception", true},
		{"Apache-2.0", "Apache-2.0 WITH LLVM-exception", false},
		{"Apache-2.0 WITH LLVM-exception", "Apache-2.0", false},
		{"Apache-2.0 WITH AdditionRef-A", "Apache-2.0 WITH AdditionRef-A", true},
		{"Apache-2.0 WITH AdditionRef-A", "Apache-2.0 WITH AdditionRef-B", false},
		{"DocumentRef-D:LicenseRef-X", "DocumentRef-D:LicenseRef-X", true},
		{"LicenseRef-X", "DocumentRef-D:LicenseRef-X", false},
	}

	for _, tc := range tests {
		lic, err := spdx.ParseLicensee(tc.licensee)
		if err != nil {
			t.Fatalf("licensee %q: %v", tc.licensee, err)
		}
		req := requirement(t, tc.req)
		if got := lic.Satisfies(req); got != tc.want {
			t.Errorf("%s satisfies %s: expected %v, got %v", tc.licensee, tc.req, tc.want, got)
		}
	}
}

func TestLicenseeCompare(t *testing.T) {
	mit, _ := spdx.ParseLicensee("MIT")
	isc, _ := spdx.ParseLicensee("ISC")
	ref, _ := spdx.ParseLicensee("LicenseRef-Custom")

	if mit.Compare(mit) != 0 {
		t.Error("A licensee must compare equal to itself")
	}
	if isc.Compare(mit) >= 0 {
		t.Error("ISC must sort before MIT")
	}
	if mit.Compare(ref) >= 0 {
		t.Error("List licenses must sort before references")
	}
}
