// Package spdx parses, validates and evaluates SPDX license
// expressions such as "MIT OR Apache-2.0 WITH LLVM-exception".
//
// An expression string is turned into an immutable Expression by Parse
// or ParseWithMode; the Expression can then be evaluated against a
// predicate, checked against concrete Licensee claims, or reduced to a
// minimal covering set of licensees with MinimizedRequirements.
//
// Invariants:
//   - Expression holds its nodes in postfix order; evaluation is a
//     single pass with an operand stack that never underflows.
//   - LicenseID/ExceptionID equality and ordering is by registry
//     index; the registry is process-wide and read-only.
//   - A Licensee never carries the or-later modifier; that belongs to
//     the license holder's requirement, not the claim.
package spdx

import (
	"github.com/EmbarkStudios/spdx/internal/registry"
)

// LicenseID is a handle for a license short identifier on the SPDX
// license list. The zero value is the first entry of the list; obtain
// meaningful handles through LookupLicense.
type LicenseID struct {
	// Name is the short identifier, e.g. "Apache-2.0".
	Name string
	// FullName is the human readable license name.
	FullName string

	index int
	flags uint8
}

// LookupLicense finds the license with the given short identifier,
// trimming one trailing '+'. Matching is exact-case.
func LookupLicense(name string) (LicenseID, bool) {
	i, ok := registry.FindLicense(name)
	if !ok {
		return LicenseID{}, false
	}
	return licenseAt(i), true
}

// LookupImpreciseLicense finds a license by a curated non-SPDX name
// ("simplified bsd license" resolves to BSD-2-Clause). Matching is
// case-insensitive longest-prefix; the returned length is how many
// bytes of text were covered, trailing garbage is ignored.
func LookupImpreciseLicense(text string) (LicenseID, int, bool) {
	i, n, ok := registry.FindImprecise(text)
	if !ok {
		return LicenseID{}, 0, false
	}
	return licenseAt(i), n, true
}

func licenseAt(i int) LicenseID {
	l := &registry.Licenses[i]
	return LicenseID{Name: l.Name, FullName: l.FullName, index: i, flags: l.Flags}
}

// Compare orders two ids by their registry index.
func (id LicenseID) Compare(o LicenseID) int {
	switch {
	case id.index < o.index:
		return -1
	case id.index > o.index:
		return 1
	}
	return 0
}

// IsFSFFreeLibre reports whether the FSF considers the license free.
func (id LicenseID) IsFSFFreeLibre() bool { return id.flags&registry.IsFSFLibre != 0 }

// IsOSIApproved reports whether the OSI has approved the license.
func (id LicenseID) IsOSIApproved() bool { return id.flags&registry.IsOSIApproved != 0 }

// IsDeprecated reports whether the SPDX list has deprecated the id.
func (id LicenseID) IsDeprecated() bool { return id.flags&registry.IsDeprecated != 0 }

// IsCopyleft reports whether the license is copyleft.
func (id LicenseID) IsCopyleft() bool { return id.flags&registry.IsCopyleft != 0 }

// IsGNU reports whether the id belongs to the GNU family (GPL, AGPL,
// LGPL, GFDL), whose ids version with '-only'/'-or-later' suffixes
// rather than the '+' every other license uses.
func (id LicenseID) IsGNU() bool { return id.flags&registry.IsGNU != 0 }

func (id LicenseID) String() string { return id.Name }

// ExceptionID is a handle for an exception short identifier on the
// SPDX exception list.
type ExceptionID struct {
	// Name is the short identifier, e.g. "LLVM-exception".
	Name string

	index int
	flags uint8
}

// LookupException finds the exception with the given short identifier.
func LookupException(name string) (ExceptionID, bool) {
	i, ok := registry.FindException(name)
	if !ok {
		return ExceptionID{}, false
	}
	e := &registry.Exceptions[i]
	return ExceptionID{Name: e.Name, index: i, flags: e.Flags}, true
}

// Compare orders two ids by their registry index.
func (id ExceptionID) Compare(o ExceptionID) int {
	switch {
	case id.index < o.index:
		return -1
	case id.index > o.index:
		return 1
	}
	return 0
}

// IsDeprecated reports whether the SPDX list has deprecated the id.
func (id ExceptionID) IsDeprecated() bool { return id.flags&registry.IsDeprecated != 0 }

func (id ExceptionID) String() string { return id.Name }

// LicenseListVersion returns the version of the SPDX license list the
// identifier registry was generated from.
func LicenseListVersion() string { return registry.Version }
