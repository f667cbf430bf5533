package spdx

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Lexer walks a license expression from left to right, producing one
// positioned token per Next call. It holds no state beyond the cursor;
// a lexer is good for exactly one pass over one string.
type Lexer struct {
	text string
	mode ParseMode
	pos  uint32
	end  uint32
}

// NewLexer creates a lexer over the expression text in Strict mode.
func NewLexer(text string) *Lexer {
	return NewLexerWithMode(text, Strict)
}

// NewLexerWithMode creates a lexer over the expression text.
func NewLexerWithMode(text string, mode ParseMode) *Lexer {
	end, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("expression length overflow: %w", err))
	}
	return &Lexer{text: text, mode: mode, end: end}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '.' || b == ':' || b == '-'
}

func isRefByte(b byte) bool {
	return isWordByte(b) && b != ':'
}

// Next returns the next token, or a TokEOF token once the input is
// exhausted. Errors are terminal: the lexer does not recover.
func (lx *Lexer) Next() (Token, error) {
	wsStart := lx.pos
	for lx.pos < lx.end && isWhitespace(lx.text[lx.pos]) {
		lx.pos++
	}
	if lx.pos >= lx.end {
		return Token{Kind: TokEOF, Span: Span{Start: lx.pos, End: lx.pos}}, nil
	}

	start := lx.pos
	switch c := lx.text[lx.pos]; {
	case c == '+':
		if wsStart != lx.pos {
			// SPDX forbids "name +"; point at the separating run.
			return Token{}, &ParseError{
				Original: lx.text,
				Span:     Span{Start: wsStart, End: lx.pos},
				Reason:   Reason{Kind: ReasonSeparatedPlus},
			}
		}
		lx.pos++
		return Token{Kind: TokPlus, Span: Span{Start: start, End: lx.pos}}, nil

	case c == '(':
		lx.pos++
		return Token{Kind: TokOpenParen, Span: Span{Start: start, End: lx.pos}}, nil

	case c == ')':
		lx.pos++
		return Token{Kind: TokCloseParen, Span: Span{Start: start, End: lx.pos}}, nil

	case c == '/' && lx.mode.AllowSlashAsOrOperator:
		lx.pos++
		return Token{Kind: TokOr, Span: Span{Start: start, End: lx.pos}}, nil

	case isWordByte(c):
		return lx.scanWord()
	}

	// Nothing can start here; the rest of the input is the span.
	return Token{}, &ParseError{
		Original: lx.text,
		Span:     Span{Start: start, End: lx.end},
		Reason:   Reason{Kind: ReasonInvalidCharacters},
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func (lx *Lexer) scanWord() (Token, error) {
	start := lx.pos
	for lx.pos < lx.end && isWordByte(lx.text[lx.pos]) {
		lx.pos++
	}
	word := lx.text[start:lx.pos]
	span := Span{Start: start, End: lx.pos}

	switch word {
	case "AND":
		return Token{Kind: TokAnd, Span: span}, nil
	case "OR":
		return Token{Kind: TokOr, Span: span}, nil
	case "WITH":
		return Token{Kind: TokWith, Span: span}, nil
	case "and", "or", "with":
		if lx.mode.AllowLowerCaseOperators {
			kind := TokAnd
			switch word {
			case "or":
				kind = TokOr
			case "with":
				kind = TokWith
			}
			return Token{Kind: kind, Span: span}, nil
		}
	}

	if id, ok := LookupLicense(word); ok {
		return lx.licenseToken(id, span)
	}
	if exc, ok := LookupException(word); ok {
		return Token{Kind: TokException, Span: span, Exception: exc}, nil
	}
	if tok, ok := lx.scanRef(word, start); ok {
		return tok, nil
	}
	if lx.mode.AllowImpreciseLicenseNames {
		// Synonyms can span several words ("simplified bsd license"),
		// so match against everything from the word start and give
		// back whatever the synonym did not cover.
		if id, n, ok := LookupImpreciseLicense(lx.text[start:]); ok {
			matched, err := safecast.Conv[uint32](n)
			if err != nil {
				panic(fmt.Errorf("imprecise match length overflow: %w", err))
			}
			lx.pos = start + matched
			return lx.licenseToken(id, Span{Start: start, End: lx.pos})
		}
	}
	if lx.mode.AllowUnknownTerms {
		return Token{Kind: TokUnknown, Span: span, Text: word}, nil
	}
	return Token{}, &ParseError{
		Original: lx.text,
		Span:     span,
		Reason:   Reason{Kind: ReasonUnknownTerm},
	}
}

// licenseToken applies the mode's deprecation policy and the GNU
// fixups before emitting a license token. In permissive modes a bare
// deprecated GNU id resolves to its '-only' form, and a GNU id
// immediately followed by '+' folds into its '-or-later' form, since
// the GNU family spells or-later as a suffix rather than a '+'.
func (lx *Lexer) licenseToken(id LicenseID, span Span) (Token, error) {
	if id.IsDeprecated() && !lx.mode.AllowDeprecatedLicenseIds {
		return Token{}, &ParseError{
			Original: lx.text,
			Span:     span,
			Reason:   Reason{Kind: ReasonDeprecatedLicenseId},
		}
	}

	if id.IsGNU() && !hasGnuSuffix(id.Name) {
		if lx.mode.AllowPostfixPlusOnGnu && lx.pos < lx.end && lx.text[lx.pos] == '+' {
			if later, ok := LookupLicense(id.Name + "-or-later"); ok {
				lx.pos++
				return Token{Kind: TokLicense, Span: Span{Start: span.Start, End: lx.pos}, License: later}, nil
			}
		}
		if id.IsDeprecated() {
			if only, ok := LookupLicense(id.Name + "-only"); ok {
				return Token{Kind: TokLicense, Span: span, License: only}, nil
			}
		}
	}

	return Token{Kind: TokLicense, Span: span, License: id}, nil
}

func hasGnuSuffix(name string) bool {
	return strings.HasSuffix(name, "-only") || strings.HasSuffix(name, "-or-later")
}

// scanRef recognizes the LicenseRef-/AdditionRef- forms, with their
// optional DocumentRef- qualifier. Only the matched prefix of the word
// is consumed; a ref cannot contain ':'.
func (lx *Lexer) scanRef(word string, start uint32) (Token, bool) {
	docRef := ""
	rest := word
	consumed := uint32(0)

	if body, ok := strings.CutPrefix(rest, "DocumentRef-"); ok {
		colon := strings.IndexByte(body, ':')
		if colon <= 0 {
			return Token{}, false
		}
		docRef = body[:colon]
		for i := 0; i < len(docRef); i++ {
			if !isRefByte(docRef[i]) {
				return Token{}, false
			}
		}
		consumed = uint32(len("DocumentRef-") + colon + 1)
		rest = body[colon+1:]
	}

	kind := TokLicenseRef
	body, ok := strings.CutPrefix(rest, "LicenseRef-")
	if !ok {
		kind = TokAdditionRef
		if body, ok = strings.CutPrefix(rest, "AdditionRef-"); !ok {
			return Token{}, false
		}
	}

	refLen := 0
	for refLen < len(body) && isRefByte(body[refLen]) {
		refLen++
	}
	if refLen == 0 {
		return Token{}, false
	}
	consumed += uint32(len(rest)-len(body)) + uint32(refLen)

	lx.pos = start + consumed
	return Token{
		Kind:   kind,
		Span:   Span{Start: start, End: lx.pos},
		DocRef: docRef,
		Ref:    body[:refLen],
	}, true
}
