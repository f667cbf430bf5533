package spdx

// Parse parses text as an SPDX license expression under strict
// SPDX 2.1 syntax.
func Parse(text string) (*Expression, error) {
	return ParseWithMode(text, Strict)
}

// stack entry of the shunting-yard loop: a pending binary operator or
// an open parenthesis waiting for its close.
type pendingOp struct {
	op    Operator
	span  Span
	paren bool
}

func precedence(op Operator) int {
	if op == OpAnd {
		return 2
	}
	return 1
}

// expectedAfter returns what may legally follow the given token, as
// shown to the user in Unexpected errors. The zero kind TokEOF stands
// for the start of the expression.
func expectedAfter(last TokenKind) []string {
	switch last {
	case TokEOF, TokAnd, TokOr, TokOpenParen:
		return []string{"<license>", "("}
	case TokCloseParen:
		return []string{"AND", "OR"}
	case TokException, TokAdditionRef:
		return []string{"AND", "OR", ")"}
	case TokLicense:
		return []string{"AND", "OR", "WITH", ")", "+"}
	case TokLicenseRef, TokUnknown, TokPlus:
		return []string{"AND", "OR", "WITH", ")"}
	case TokWith:
		return []string{"<addition>"}
	}
	return nil
}

// isTermEnd reports whether an expression may legally end (or a group
// close) right after the given token.
func isTermEnd(last TokenKind) bool {
	switch last {
	case TokLicense, TokLicenseRef, TokUnknown, TokPlus,
		TokException, TokAdditionRef, TokCloseParen:
		return true
	}
	return false
}

// ParseWithMode parses text as an SPDX license expression, with the
// mode selecting which deviations from strict SPDX 2.1 syntax are
// tolerated. The expression is lowered to postfix as it is parsed, so
// a returned Expression is always well formed and evaluates without
// further validation.
func ParseWithMode(text string, mode ParseMode) (*Expression, error) {
	lx := NewLexerWithMode(text, mode)

	var expr []exprNode
	var ops []pendingOp
	last := TokEOF // start of expression

	applyOp := func(op Operator) {
		// Left associative: equal precedence binds to the left.
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.paren || precedence(top.op) < precedence(op) {
				break
			}
			ops = ops[:len(ops)-1]
			expr = append(expr, exprNode{kind: nodeOp, op: top.op})
		}
	}

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			if last == TokEOF {
				return nil, &ParseError{
					Original: text,
					Span:     Span{Start: 0, End: tok.Span.End},
					Reason:   Reason{Kind: ReasonEmpty},
				}
			}
			if !isTermEnd(last) {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.paren {
					return nil, &ParseError{
						Original: text,
						Span:     top.span,
						Reason:   Reason{Kind: ReasonUnclosedParens},
					}
				}
				expr = append(expr, exprNode{kind: nodeOp, op: top.op})
			}
			return &Expression{expr: expr, original: text}, nil
		}

		switch tok.Kind {
		case TokLicense:
			if last != TokEOF && last != TokAnd && last != TokOr && last != TokOpenParen {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			expr = append(expr, exprNode{kind: nodeReq, req: ExpressionReq{
				Req:  tok.License.Req(),
				Span: tok.Span,
			}})

		case TokLicenseRef:
			if last != TokEOF && last != TokAnd && last != TokOr && last != TokOpenParen {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			expr = append(expr, exprNode{kind: nodeReq, req: ExpressionReq{
				Req: LicenseReq{License: LicenseItem{
					Kind:   ItemOther,
					DocRef: tok.DocRef,
					LicRef: tok.Ref,
				}},
				Span: tok.Span,
			}})

		case TokUnknown:
			// In permissive modes an unrecognized word stands in for
			// a license and is carried through as a bare reference.
			if last != TokEOF && last != TokAnd && last != TokOr && last != TokOpenParen {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			expr = append(expr, exprNode{kind: nodeReq, req: ExpressionReq{
				Req: LicenseReq{License: LicenseItem{
					Kind:   ItemOther,
					LicRef: tok.Text,
				}},
				Span: tok.Span,
			}})

		case TokPlus:
			if last != TokLicense {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			node := &expr[len(expr)-1]
			if id := node.req.Req.License.ID; id.IsGNU() {
				span := node.req.Span.Cover(tok.Span)
				if !mode.AllowPostfixPlusOnGnu {
					return nil, &ParseError{
						Original: text,
						Span:     span,
						Reason:   Reason{Kind: ReasonGnuNoPlus},
					}
				}
				// The lexer folds "+" into the -or-later id when the
				// base has no suffix, so reaching here means it had one.
				return nil, &ParseError{
					Original: text,
					Span:     span,
					Reason:   Reason{Kind: ReasonGnuPlusWithSuffix},
				}
			}
			node.req.Req.License.OrLater = true
			node.req.Span.End = tok.Span.End

		case TokWith:
			switch last {
			case TokLicense, TokLicenseRef, TokUnknown, TokPlus:
			default:
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}

		case TokException:
			if last != TokWith {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			node := &expr[len(expr)-1]
			node.req.Req.Addition = AdditionItem{Kind: AdditionSPDX, ID: tok.Exception}
			node.req.Span.End = tok.Span.End

		case TokAdditionRef:
			if last != TokWith {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			node := &expr[len(expr)-1]
			node.req.Req.Addition = AdditionItem{
				Kind:   AdditionOther,
				DocRef: tok.DocRef,
				AddRef: tok.Ref,
			}
			node.req.Span.End = tok.Span.End

		case TokAnd, TokOr:
			if !isTermEnd(last) {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			op := OpOr
			if tok.Kind == TokAnd {
				op = OpAnd
			}
			applyOp(op)
			ops = append(ops, pendingOp{op: op, span: tok.Span})

		case TokOpenParen:
			if last != TokEOF && last != TokAnd && last != TokOr && last != TokOpenParen {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			ops = append(ops, pendingOp{paren: true, span: tok.Span})

		case TokCloseParen:
			if !isTermEnd(last) {
				return nil, unexpected(text, tok.Span, expectedAfter(last))
			}
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.paren {
					matched = true
					break
				}
				expr = append(expr, exprNode{kind: nodeOp, op: top.op})
			}
			if !matched {
				return nil, &ParseError{
					Original: text,
					Span:     tok.Span,
					Reason:   Reason{Kind: ReasonUnopenedParens},
				}
			}
		}

		last = tok.Kind
	}
}
