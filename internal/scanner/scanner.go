// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner tokenizes expression source text.
package scanner

import (
	"fmt"
	"unicode"

	"nickandperla.net/calc/internal/token"
)

// Error is a lexing failure. It carries the offending text and the
// zero-based offset where it starts.
type Error struct {
	Pos  int
	Text string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at %d: %s %q", e.Pos, e.Msg, e.Text)
}

// Tokenize converts input into its token sequence. It fails with *Error on
// the first unrecognized character or malformed numeric literal. The result
// is fully determined by the input; there is no backtracking.
func Tokenize(input string) ([]token.Token, error) {
	var toks []token.Token
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			dots := 0
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				i++
			}
			text := string(runes[start:i])
			if dots > 1 || text == "." {
				return nil, &Error{Pos: start, Text: text, Msg: "malformed number"}
			}
			toks = append(toks, token.Token{Kind: token.Number, Text: text, Pos: start})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && isIdentChar(runes[i]) {
				i++
			}
			toks = append(toks, token.Token{Kind: token.Ident, Text: string(runes[start:i]), Pos: start})

		case token.IsOperator(r):
			toks = append(toks, token.Token{Kind: token.Operator, Text: string(r), Pos: i})
			i++

		case r == '(':
			toks = append(toks, token.Token{Kind: token.ParenOpen, Text: "(", Pos: i})
			i++

		case r == ')':
			toks = append(toks, token.Token{Kind: token.ParenClose, Text: ")", Pos: i})
			i++

		case r == ',':
			toks = append(toks, token.Token{Kind: token.Comma, Text: ",", Pos: i})
			i++

		default:
			return nil, &Error{Pos: i, Text: string(r), Msg: "unrecognized character"}
		}
	}

	return toks, nil
}

// isIdentChar reports whether r may appear after the first character of an
// identifier (letter, digit, underscore).
func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
