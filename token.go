package spdx

// TokenKind represents the category of an expression token.
type TokenKind uint8

const (
	// TokEOF marks the end of the expression text.
	TokEOF TokenKind = iota
	// TokLicense is a recognized SPDX license short identifier.
	TokLicense
	// TokLicenseRef is a LicenseRef-, optionally DocumentRef-
	// qualified, license reference.
	TokLicenseRef
	// TokException is a recognized SPDX exception short identifier.
	TokException
	// TokAdditionRef is an AdditionRef-, optionally DocumentRef-
	// qualified, addition reference.
	TokAdditionRef
	// TokUnknown is a term matching nothing in the license list; only
	// produced when the mode allows unknown terms.
	TokUnknown
	// TokPlus is a postfix '+'.
	TokPlus
	// TokOpenParen is '('.
	TokOpenParen
	// TokCloseParen is ')'.
	TokCloseParen
	// TokWith is the 'WITH' operator.
	TokWith
	// TokAnd is the 'AND' operator.
	TokAnd
	// TokOr is the 'OR' operator.
	TokOr
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "<eof>"
	case TokLicense:
		return "<license>"
	case TokLicenseRef:
		return "<license-ref>"
	case TokException:
		return "<exception>"
	case TokAdditionRef:
		return "<addition-ref>"
	case TokUnknown:
		return "<unknown>"
	case TokPlus:
		return "+"
	case TokOpenParen:
		return "("
	case TokCloseParen:
		return ")"
	case TokWith:
		return "WITH"
	case TokAnd:
		return "AND"
	case TokOr:
		return "OR"
	}
	return "<invalid>"
}

// Token is a single lexed expression token with its source span. The
// payload fields are populated by kind: License for TokLicense,
// Exception for TokException, DocRef/Ref for TokLicenseRef and
// TokAdditionRef, Text for TokUnknown.
type Token struct {
	Kind TokenKind
	Span Span

	License   LicenseID
	Exception ExceptionID
	DocRef    string
	Ref       string
	Text      string
}

// IsOperator reports whether the token joins license terms.
func (t Token) IsOperator() bool {
	return t.Kind == TokAnd || t.Kind == TokOr || t.Kind == TokWith
}

// IsTerm reports whether the token can occupy a license position.
func (t Token) IsTerm() bool {
	return t.Kind == TokLicense || t.Kind == TokLicenseRef || t.Kind == TokUnknown
}
