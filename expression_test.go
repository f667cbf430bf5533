package spdx_test

import (
	"testing"

	"github.com/EmbarkStudios/spdx"
)

func TestExpressionString_RoundTrip(t *testing.T) {
	// Текстовое представление выражения — это в точности исходная строка
	inputs := []string{
		"MIT",
		"MIT OR Apache-2.0",
		"(MIT AND ISC)   OR Zlib",
		"Apache-2.0 WITH LLVM-exception",
	}
	for _, input := range inputs {
		expr, err := spdx.Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if expr.String() != input {
			t.Errorf("Expected %q, got %q", input, expr.String())
		}
	}
}

func TestExpressionIter_WellFormed(t *testing.T) {
	// Счётчик операндов (+1 за требование, −1 за оператор) никогда не
	// падает ниже единицы и заканчивается ровно на единице
	inputs := []string{
		"MIT",
		"MIT OR ISC",
		"MIT AND ISC OR Zlib AND Apache-2.0",
		"((MIT OR ISC) AND (Zlib OR Apache-2.0)) OR BSD-3-Clause",
	}
	for _, input := range inputs {
		expr, err := spdx.Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		depth := 0
		for tok := range expr.Iter() {
			if tok.Req != nil {
				depth++
			} else {
				depth--
			}
			if depth < 1 {
				t.Fatalf("Input %q: operand stack underflow", input)
			}
		}
		if depth != 1 {
			t.Errorf("Input %q: expected final depth 1, got %d", input, depth)
		}
	}
}

func TestOperatorString(t *testing.T) {
	if spdx.OpAnd.String() != "AND" || spdx.OpOr.String() != "OR" {
		t.Error("Operator renderings must match the grammar keywords")
	}
}
