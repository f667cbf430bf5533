package spdx

import "strings"

// Licensee is a single license (with optional addition) that a
// project is actually offered under, used to answer whether a parsed
// expression's requirements are met.
type Licensee struct {
	inner LicenseReq
}

// ParseLicensee parses a single licensee under strict SPDX 2.1
// syntax.
func ParseLicensee(original string) (Licensee, error) {
	return ParseLicenseeWithMode(original, Strict)
}

// ParseLicenseeWithMode parses a single licensee: one license id or
// LicenseRef, optionally followed by WITH and an addition. Composite
// expressions, `+`, and the GFDL no-invariants variants are rejected;
// a licensee names what is offered, not a requirement to widen.
func ParseLicenseeWithMode(original string, mode ParseMode) (Licensee, error) {
	lx := NewLexerWithMode(original, mode)

	first, err := lx.Next()
	if err != nil {
		return Licensee{}, err
	}

	var req LicenseReq
	switch first.Kind {
	case TokEOF:
		return Licensee{}, &ParseError{
			Original: original,
			Span:     Span{Start: 0, End: first.Span.End},
			Reason:   Reason{Kind: ReasonEmpty},
		}
	case TokLicense:
		if strings.Contains(first.License.Name, "-no-invariants") {
			return Licensee{}, unexpected(original, first.Span, []string{"<license>"})
		}
		req = first.License.Req()
	case TokLicenseRef:
		req.License = LicenseItem{
			Kind:   ItemOther,
			DocRef: first.DocRef,
			LicRef: first.Ref,
		}
	default:
		return Licensee{}, unexpected(original, first.Span, []string{"<license>"})
	}

	next, err := lx.Next()
	if err != nil {
		return Licensee{}, err
	}
	switch next.Kind {
	case TokEOF:
		return Licensee{inner: req}, nil
	case TokPlus:
		if first.Kind == TokLicense && first.License.IsGNU() {
			span := first.Span.Cover(next.Span)
			kind := ReasonGnuNoPlus
			if mode.AllowPostfixPlusOnGnu {
				kind = ReasonGnuPlusWithSuffix
			}
			return Licensee{}, &ParseError{
				Original: original,
				Span:     span,
				Reason:   Reason{Kind: kind},
			}
		}
		return Licensee{}, unexpected(original, next.Span, []string{"WITH"})
	case TokWith:
	default:
		return Licensee{}, unexpected(original, next.Span, nil)
	}

	add, err := lx.Next()
	if err != nil {
		return Licensee{}, err
	}
	switch add.Kind {
	case TokException:
		req.Addition = AdditionItem{Kind: AdditionSPDX, ID: add.Exception}
	case TokAdditionRef:
		req.Addition = AdditionItem{
			Kind:   AdditionOther,
			DocRef: add.DocRef,
			AddRef: add.Ref,
		}
	default:
		return Licensee{}, unexpected(original, add.Span, []string{"<addition>"})
	}

	trailing, err := lx.Next()
	if err != nil {
		return Licensee{}, err
	}
	if trailing.Kind != TokEOF {
		return Licensee{}, unexpected(original, trailing.Span, nil)
	}
	return Licensee{inner: req}, nil
}

// Req returns the licensee as a plain license requirement.
func (l Licensee) Req() LicenseReq {
	return l.inner
}

// Compare orders licensees the way their requirements order.
func (l Licensee) Compare(o Licensee) int {
	return l.inner.Compare(o.inner)
}

func (l Licensee) String() string {
	return l.inner.String()
}

// gnuStrip removes the GNU-family -only / -or-later suffix, leaving
// non-GNU names untouched.
func gnuStrip(name string) string {
	if s, ok := strings.CutSuffix(name, "-only"); ok {
		return s
	}
	if s, ok := strings.CutSuffix(name, "-or-later"); ok {
		return s
	}
	return name
}

// invariantsMod splits off the GFDL invariants modifier, returning
// the modifier ("", "invariants" or "no-invariants") and the name
// without it.
func invariantsMod(name string) (string, string) {
	if s, ok := strings.CutSuffix(name, "-no-invariants"); ok {
		return "no-invariants", s
	}
	if s, ok := strings.CutSuffix(name, "-invariants"); ok {
		return "invariants", s
	}
	return "", name
}

// stripVersion removes a trailing "-<version>" segment, where the
// version is made of digits and dots only.
func stripVersion(name string) string {
	i := strings.LastIndexByte(name, '-')
	if i < 0 || i == len(name)-1 {
		return name
	}
	for _, b := range []byte(name[i+1:]) {
		if b != '.' && (b < '0' || b > '9') {
			return name
		}
	}
	return name[:i]
}

// Satisfies reports whether this licensee meets the single
// requirement. A requirement widened to later versions accepts any
// licensee of the same license lineage with an equal-or-greater
// version; GFDL invariants variants only ever match the identical
// invariants stance. The addition must match exactly either way.
func (l Licensee) Satisfies(req LicenseReq) bool {
	lic := l.inner.License
	want := req.License

	switch {
	case lic.Kind == ItemSPDX && want.Kind == ItemSPDX:
		if lic.ID.Compare(want.ID) != 0 {
			if !want.OrLater {
				return false
			}
			ln := gnuStrip(lic.ID.Name)
			wn := gnuStrip(want.ID.Name)
			lmod, lbase := invariantsMod(ln)
			wmod, wbase := invariantsMod(wn)
			if lmod != wmod {
				return false
			}
			if stripVersion(lbase) != stripVersion(wbase) {
				return false
			}
			if ln < wn {
				return false
			}
		}
	case lic.Kind == ItemOther && want.Kind == ItemOther:
		if lic.DocRef != want.DocRef || lic.LicRef != want.LicRef {
			return false
		}
	default:
		return false
	}

	return l.inner.Addition == req.Addition
}
