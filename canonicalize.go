package spdx

import "strings"

// Canonicalize rewrites a license expression into the equivalent
// strict SPDX form: operators uppercased, slashes turned into OR,
// imprecise and deprecated names replaced with their list ids, and
// GNU-family suffixes normalized. The returned bool reports whether
// the result differs from the input. Expressions that do not parse
// even under Lax rules return the parse error.
func Canonicalize(original string) (string, bool, error) {
	if _, err := ParseWithMode(original, Lax); err != nil {
		return "", false, err
	}

	lx := NewLexerWithMode(original, Lax)
	var sb strings.Builder
	prev := TokEOF
	for {
		tok, err := lx.Next()
		if err != nil {
			return "", false, err
		}
		if tok.Kind == TokEOF {
			break
		}
		if sb.Len() > 0 && prev != TokOpenParen &&
			tok.Kind != TokPlus && tok.Kind != TokCloseParen {
			sb.WriteByte(' ')
		}
		switch tok.Kind {
		case TokLicense:
			sb.WriteString(tok.License.Name)
		case TokException:
			sb.WriteString(tok.Exception.Name)
		case TokLicenseRef:
			if tok.DocRef != "" {
				sb.WriteString("DocumentRef-")
				sb.WriteString(tok.DocRef)
				sb.WriteByte(':')
			}
			sb.WriteString("LicenseRef-")
			sb.WriteString(tok.Ref)
		case TokAdditionRef:
			if tok.DocRef != "" {
				sb.WriteString("DocumentRef-")
				sb.WriteString(tok.DocRef)
				sb.WriteByte(':')
			}
			sb.WriteString("AdditionRef-")
			sb.WriteString(tok.Ref)
		case TokUnknown:
			sb.WriteString(tok.Text)
		default:
			sb.WriteString(tok.Kind.String())
		}
		prev = tok.Kind
	}

	s := sb.String()
	return s, s != original, nil
}
