// Package registry is the process-wide, read-only SPDX identifier
// registry. The tables in licenses.go are generated, sorted by name in
// byte order, and never mutated; every lookup is a binary search over
// them and every id handle elsewhere in the module is just an index
// into one of the tables.
package registry

import (
	"sort"
	"strings"
)

// FindLicense returns the index of the license with the given short
// identifier, if any. One trailing '+' is trimmed before the search, so
// the historical "Apache-2.0+" style resolves to "Apache-2.0".
func FindLicense(name string) (int, bool) {
	name = strings.TrimSuffix(name, "+")
	i := sort.Search(len(Licenses), func(i int) bool { return Licenses[i].Name >= name })
	if i < len(Licenses) && Licenses[i].Name == name {
		return i, true
	}
	return 0, false
}

// FindException returns the index of the exception with the given short
// identifier, if any.
func FindException(name string) (int, bool) {
	i := sort.Search(len(Exceptions), func(i int) bool { return Exceptions[i].Name >= name })
	if i < len(Exceptions) && Exceptions[i].Name == name {
		return i, true
	}
	return 0, false
}

// FindImprecise matches the curated synonym table against the start of
// text, ASCII case-insensitively. The table is ordered longest prefix
// first so the longest synonym wins. It returns the license index and
// the number of bytes of text the synonym covered.
func FindImprecise(text string) (idx int, matched int, ok bool) {
	for _, syn := range impreciseNames {
		if len(text) < len(syn.prefix) {
			continue
		}
		if !strings.EqualFold(text[:len(syn.prefix)], syn.prefix) {
			continue
		}
		if idx, ok := FindLicense(syn.name); ok {
			return idx, len(syn.prefix), true
		}
	}
	return 0, 0, false
}
