package spdx

// ParseMode controls how far the lexer and parser bend the SPDX 2.1
// grammar to accept expressions seen in real package metadata. A mode
// is passed by value and never modified during a parse.
type ParseMode struct {
	// AllowLowerCaseOperators accepts 'and', 'or' and 'with' in
	// addition to the grammar's upper case forms.
	AllowLowerCaseOperators bool
	// AllowSlashAsOrOperator accepts '/' as an OR operator, a common
	// pre-SPDX convention ("MIT/Apache-2.0").
	AllowSlashAsOrOperator bool
	// AllowImpreciseLicenseNames resolves a curated set of license
	// names seen in the wild ("apache 2.0") to their SPDX ids.
	AllowImpreciseLicenseNames bool
	// AllowPostfixPlusOnGnu accepts 'GPL-3.0+' style ids by resolving
	// them to the '-or-later' id the GNU family uses instead of '+'.
	AllowPostfixPlusOnGnu bool
	// AllowDeprecatedLicenseIds accepts ids the SPDX list has
	// deprecated. Bare GNU ids such as 'GPL-2.0' additionally resolve
	// to their '-only' form, since that is what the deprecated id
	// meant.
	AllowDeprecatedLicenseIds bool
	// AllowUnknownTerms turns terms that match nothing in the license
	// list into Unknown tokens instead of failing the lex.
	AllowUnknownTerms bool
}

// Strict accepts only the SPDX 2.1 grammar with current identifiers.
var Strict = ParseMode{}

// Lax enables every permissive flag.
var Lax = ParseMode{
	AllowLowerCaseOperators:    true,
	AllowSlashAsOrOperator:     true,
	AllowImpreciseLicenseNames: true,
	AllowPostfixPlusOnGnu:      true,
	AllowDeprecatedLicenseIds:  true,
	AllowUnknownTerms:          true,
}
