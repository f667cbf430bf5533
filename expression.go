package spdx

import (
	"iter"
	"strings"
)

// Operator is a binary operator in a license expression.
type Operator uint8

const (
	// OpAnd requires both operands to be satisfied.
	OpAnd Operator = iota
	// OpOr requires at least one operand to be satisfied.
	OpOr
)

func (op Operator) String() string {
	if op == OpAnd {
		return "AND"
	}
	return "OR"
}

// exprNodeKind discriminates expression nodes.
type exprNodeKind uint8

const (
	nodeReq exprNodeKind = iota
	nodeOp
)

// ExpressionReq is a license requirement together with the span of
// the original text it was parsed from.
type ExpressionReq struct {
	Req  LicenseReq
	Span Span
}

// exprNode is one slot in the postfix instruction stream: either a
// requirement to push or an operator to apply.
type exprNode struct {
	kind exprNodeKind
	req  ExpressionReq
	op   Operator
}

// Expression is a parsed SPDX license expression, stored in postfix
// order so evaluation is a single stack pass with no recursion.
type Expression struct {
	expr     []exprNode
	original string
}

// Requirements yields every license requirement in the expression, in
// the order it appeared in the original text, together with its span.
func (e *Expression) Requirements() iter.Seq[ExpressionReq] {
	return func(yield func(ExpressionReq) bool) {
		for _, n := range e.expr {
			if n.kind != nodeReq {
				continue
			}
			if !yield(n.req) {
				return
			}
		}
	}
}

// ExprToken is one element of the postfix stream, as yielded by Iter.
type ExprToken struct {
	Req *ExpressionReq
	Op  Operator
}

// Iter yields the full postfix stream: requirements and operators in
// evaluation order. Req is nil on operator elements.
func (e *Expression) Iter() iter.Seq[ExprToken] {
	return func(yield func(ExprToken) bool) {
		for i := range e.expr {
			n := &e.expr[i]
			var t ExprToken
			if n.kind == nodeReq {
				t.Req = &n.req
			} else {
				t.Op = n.op
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Evaluate runs the expression against a predicate that decides
// whether a single requirement is satisfied, and reports whether the
// expression as a whole is. The predicate is called once per
// requirement, in original text order.
func (e *Expression) Evaluate(allow func(LicenseReq) bool) bool {
	var stack []bool
	for _, n := range e.expr {
		switch n.kind {
		case nodeReq:
			stack = append(stack, allow(n.req.Req))
		case nodeOp:
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if n.op == OpAnd {
				stack[len(stack)-1] = a && b
			} else {
				stack[len(stack)-1] = a || b
			}
		}
	}
	return stack[0]
}

// EvaluateWithFailures is Evaluate, but also collects every
// requirement the predicate rejected, in original text order,
// regardless of whether the rejection mattered to the overall result.
func (e *Expression) EvaluateWithFailures(allow func(LicenseReq) bool) ([]ExpressionReq, bool) {
	var failed []ExpressionReq
	var stack []bool
	for _, n := range e.expr {
		switch n.kind {
		case nodeReq:
			ok := allow(n.req.Req)
			if !ok {
				failed = append(failed, n.req)
			}
			stack = append(stack, ok)
		case nodeOp:
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if n.op == OpAnd {
				stack[len(stack)-1] = a && b
			} else {
				stack[len(stack)-1] = a || b
			}
		}
	}
	return failed, stack[0]
}

// Equal reports whether two expressions have the same postfix shape:
// the same requirements and operators in the same evaluation order.
// Expressions that differ only in redundant parentheses compare equal;
// ones that merely evaluate the same under all predicates need not.
func (e *Expression) Equal(o *Expression) bool {
	if len(e.expr) != len(o.expr) {
		return false
	}
	for i := range e.expr {
		a, b := &e.expr[i], &o.expr[i]
		if a.kind != b.kind {
			return false
		}
		if a.kind == nodeOp {
			if a.op != b.op {
				return false
			}
		} else if a.req.Req != b.req.Req {
			return false
		}
	}
	return true
}

// String returns the original text the expression was parsed from.
func (e *Expression) String() string {
	return e.original
}

// PostfixString renders the postfix stream, one element per space.
// Useful for debugging and for structural comparison in tests.
func (e *Expression) PostfixString() string {
	var sb strings.Builder
	for i, n := range e.expr {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if n.kind == nodeReq {
			sb.WriteString(n.req.Req.String())
		} else {
			sb.WriteString(n.op.String())
		}
	}
	return sb.String()
}
