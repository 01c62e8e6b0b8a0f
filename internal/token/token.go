// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines the lexical token types of the expression language.
package token

import (
	"strconv"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	// Number is a numeric literal such as 42 or 3.14 or .5.
	Number Kind = iota
	// Ident is a variable, constant, or function name.
	Ident
	// Operator is a single-character operator.
	Operator
	// ParenOpen is (.
	ParenOpen
	// ParenClose is ).
	ParenClose
	// Comma separates function-call arguments.
	Comma
)

// String returns the human-readable name of a token kind.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case Operator:
		return "operator"
	case ParenOpen:
		return "("
	case ParenClose:
		return ")"
	case Comma:
		return ","
	}
	return "unknown"
}

// Token is one lexical unit. Pos is the zero-based character (rune)
// offset of the token's first character in the source string; it exists
// for diagnostics only.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// The single-character operators recognized by the lexer. The parser
// understands a subset; the rest surface as parse errors with a position.
const operators = "+-*/^=<>!%;"

// IsOperator reports whether r is one of the operator characters.
func IsOperator(r rune) bool {
	for _, op := range operators {
		if r == op {
			return true
		}
	}
	return false
}

// End returns the rune offset just past the token's last character.
func (t Token) End() int {
	return t.Pos + utf8.RuneCountInString(t.Text)
}
