package spdx

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ReasonKind enumerates why a lex or parse failed.
type ReasonKind uint8

const (
	// ReasonUnknownLicense: a license short identifier was not on the
	// SPDX list.
	ReasonUnknownLicense ReasonKind = iota
	// ReasonUnknownException: an exception short identifier was not on
	// the SPDX list.
	ReasonUnknownException
	// ReasonInvalidCharacters: characters outside the expression
	// grammar were found.
	ReasonInvalidCharacters
	// ReasonUnclosedParens: an opening parenthesis was never closed.
	ReasonUnclosedParens
	// ReasonUnopenedParens: a closing parenthesis was never opened.
	ReasonUnopenedParens
	// ReasonEmpty: the expression contains no terms at all.
	ReasonEmpty
	// ReasonUnexpected: a term appeared where the grammar does not
	// allow it; Expected lists what would have been legal.
	ReasonUnexpected
	// ReasonSeparatedPlus: '+' followed whitespace, which the SPDX
	// spec forbids.
	ReasonSeparatedPlus
	// ReasonUnknownTerm: a term matched no license, exception, ref
	// form or operator.
	ReasonUnknownTerm
	// ReasonGnuNoPlus: '+' was applied to a GNU-family license, which
	// versions with '-only'/'-or-later' suffixes instead.
	ReasonGnuNoPlus
	// ReasonGnuPlusWithSuffix: '+' was applied to a GNU-family license
	// that already carries a '-only'/'-or-later' suffix.
	ReasonGnuPlusWithSuffix
	// ReasonDeprecatedLicenseId: the id is deprecated and the mode
	// does not allow deprecated ids.
	ReasonDeprecatedLicenseId
)

// Reason is the failure cause carried by a ParseError.
type Reason struct {
	Kind ReasonKind
	// Expected lists legal alternatives for ReasonUnexpected.
	Expected []string
}

func (r Reason) String() string {
	switch r.Kind {
	case ReasonUnknownLicense:
		return "unknown license id"
	case ReasonUnknownException:
		return "unknown exception id"
	case ReasonInvalidCharacters:
		return "invalid character(s)"
	case ReasonUnclosedParens:
		return "unclosed parens"
	case ReasonUnopenedParens:
		return "unopened parens"
	case ReasonEmpty:
		return "empty expression"
	case ReasonUnexpected:
		switch len(r.Expected) {
		case 0:
			return "the term was not expected here"
		case 1:
			return "expected a `" + r.Expected[0] + "` here"
		default:
			var sb strings.Builder
			sb.WriteString("expected one of ")
			for i, exp := range r.Expected {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteByte('`')
				sb.WriteString(exp)
				sb.WriteByte('`')
			}
			sb.WriteString(" here")
			return sb.String()
		}
	case ReasonSeparatedPlus:
		return "`+` must not follow whitespace"
	case ReasonUnknownTerm:
		return "unknown term"
	case ReasonGnuNoPlus:
		return "GNU licenses use `-only`/`-or-later` suffixes, not `+`"
	case ReasonGnuPlusWithSuffix:
		return "`+` cannot follow a GNU license that already has a suffix"
	case ReasonDeprecatedLicenseId:
		return "deprecated license id"
	}
	return "unknown error"
}

// ParseError is a terminal lex or parse failure. It carries the full
// original input and a byte span so the message can point a caret at
// the offending text.
type ParseError struct {
	Original string
	Span     Span
	Reason   Reason
}

// Error renders the original text with a caret underline:
//
//	MIT OR NOPE
//	       ^^^^ unknown term
//
// Parenthesis mismatches use a single marker instead of an underline
// so "opened, never closed" reads differently from "closed, never
// opened".
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Original)
	sb.WriteByte('\n')

	start := int(e.Span.Start)
	end := int(e.Span.End)
	if start > len(e.Original) {
		start = len(e.Original)
	}
	if end > len(e.Original) {
		end = len(e.Original)
	}
	sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(e.Original[:start])))

	switch e.Reason.Kind {
	case ReasonUnclosedParens:
		sb.WriteString("- ")
	case ReasonUnopenedParens:
		sb.WriteString("^ ")
	default:
		carets := runewidth.StringWidth(e.Original[start:end])
		if carets < 1 {
			carets = 1
		}
		sb.WriteString(strings.Repeat("^", carets))
		sb.WriteByte(' ')
	}
	sb.WriteString(e.Reason.String())
	return sb.String()
}

func unexpected(original string, span Span, expected []string) *ParseError {
	return &ParseError{
		Original: original,
		Span:     span,
		Reason:   Reason{Kind: ReasonUnexpected, Expected: expected},
	}
}
