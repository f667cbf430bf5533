package spdx

import (
	"errors"
	"fmt"
)

// ErrRequirementsUnmet is returned by MinimizedRequirements when the
// accepted licensees cannot satisfy the expression even when all of
// them are applied together.
var ErrRequirementsUnmet = errors.New("expression not satisfied by the accepted licensees")

// TooManyRequirementsError is returned by MinimizedRequirements when
// more licensees are relevant to the expression than the minimizer's
// subset search can handle.
type TooManyRequirementsError struct {
	Count int
}

func (e *TooManyRequirementsError) Error() string {
	return fmt.Sprintf("%d licensees satisfy requirements in the expression, the maximum supported is 64", e.Count)
}

// MinimizedRequirements finds a minimal subset of the accepted
// licensees that still satisfies the expression, returned as license
// requirements. Accepted licensees are treated as priority ordered:
// among subsets found at the same search depth, ones built from
// earlier licensees win, so the result is deterministic.
func (e *Expression) MinimizedRequirements(accepted []Licensee) ([]LicenseReq, error) {
	// Keep only licensees that satisfy at least one requirement,
	// preserving priority order and dropping duplicates.
	var found []Licensee
	for _, lic := range accepted {
		relevant := false
		for ereq := range e.Requirements() {
			if lic.Satisfies(ereq.Req) {
				relevant = true
				break
			}
		}
		if !relevant {
			continue
		}
		dup := false
		for _, f := range found {
			if f.inner == lic.inner {
				dup = true
				break
			}
		}
		if !dup {
			found = append(found, lic)
		}
	}

	if len(found) > 64 {
		return nil, &TooManyRequirementsError{Count: len(found)}
	}

	satisfiedBy := func(mask uint64) func(LicenseReq) bool {
		return func(req LicenseReq) bool {
			for i, lic := range found {
				if mask&(1<<uint(i)) == 0 {
					continue
				}
				if lic.Satisfies(req) {
					return true
				}
			}
			return false
		}
	}

	collect := func(mask uint64) []LicenseReq {
		var reqs []LicenseReq
		for i, lic := range found {
			if mask&(1<<uint(i)) != 0 {
				reqs = append(reqs, lic.inner)
			}
		}
		return reqs
	}

	full := ^uint64(0)
	if len(found) < 64 {
		full = 1<<uint(len(found)) - 1
	}
	if !e.Evaluate(satisfiedBy(full)) {
		return nil, ErrRequirementsUnmet
	}

	// Walk every subset in increasing mask order; for n == 64 the end
	// marker wraps to zero and the loop covers the full range.
	end := uint64(1) << uint(len(found))
	if len(found) == 64 {
		end = 0
	}
	for mask := uint64(1); mask != end; mask++ {
		if e.Evaluate(satisfiedBy(mask)) {
			return collect(mask), nil
		}
	}

	return collect(full), nil
}
