// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser builds expression trees by recursive descent.
//
// Precedence, loosest to tightest: batch (;), assignment (=), additive
// (+ -, left-associative), multiplicative (* /, left-associative), power
// (^, right-associative), unary (prefix - +), primary. Prefix signs bind
// to the immediate primary before ^ is consulted, so -2^2 parses as
// (-2)^2.
package parser

import (
	"fmt"
	"strconv"

	"nickandperla.net/calc/internal/ast"
	"nickandperla.net/calc/internal/scanner"
	"nickandperla.net/calc/internal/token"
)

// Error is a parse failure. Pos is the offending token's offset, or the
// offset just past the last consumed token when input ended early. Got is
// the offending token's text, empty at end of input.
type Error struct {
	Pos      int
	Expected string
	Got      string
}

func (e *Error) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("parse error at %d: expected %s, found end of input", e.Pos, e.Expected)
	}
	return fmt.Sprintf("parse error at %d: expected %s, found %q", e.Pos, e.Expected, e.Got)
}

// Parse tokenizes input and parses it into a single tree. It either
// returns a complete tree or an error; partial trees are never returned.
func Parse(input string) (ast.Node, error) {
	toks, err := scanner.Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	node, err := p.parseBatch()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, p.errExpected("end of expression")
	}
	return node, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

// peek returns the next token without consuming it.
func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() token.Token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// peekOp reports whether the next token is the given operator.
func (p *parser) peekOp(text string) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == token.Operator && tok.Text == text
}

// acceptOp consumes the next token if it is the given operator.
func (p *parser) acceptOp(text string) bool {
	if p.peekOp(text) {
		p.pos++
		return true
	}
	return false
}

// endPos is the offset just past the last consumed token.
func (p *parser) endPos() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End()
}

func (p *parser) errExpected(expected string) *Error {
	if tok, ok := p.peek(); ok {
		return &Error{Pos: tok.Pos, Expected: expected, Got: tok.Text}
	}
	return &Error{Pos: p.endPos(), Expected: expected}
}

// parseBatch parses ;-separated expressions. A single expression is
// returned unwrapped; two or more are wrapped in a Batch in source order.
func (p *parser) parseBatch() (ast.Node, error) {
	first, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if !p.peekOp(";") {
		return first, nil
	}
	exprs := []ast.Node{first}
	for p.acceptOp(";") {
		e, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return ast.Batch{Exprs: exprs}, nil
}

// parseAssign parses an additive expression and, if an = follows, turns
// the left side into an assignment or function definition. The left side
// must be a bare variable, or a call whose every argument is a bare
// variable; anything else is an error.
func (p *parser) parseAssign() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.peekOp("=") {
		return left, nil
	}
	eq := p.next()
	value, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	switch lhs := left.(type) {
	case ast.Variable:
		return ast.Assign{Name: lhs.Name, Value: value}, nil
	case ast.Call:
		params := make([]string, len(lhs.Args))
		for i, arg := range lhs.Args {
			v, ok := arg.(ast.Variable)
			if !ok {
				return nil, &Error{Pos: eq.Pos, Expected: "parameter names in function signature", Got: eq.Text}
			}
			params[i] = v.Name
		}
		return ast.FuncDef{Name: lhs.Name, Params: params, Body: value}, nil
	default:
		return nil, &Error{Pos: eq.Pos, Expected: "variable or function signature left of '='", Got: eq.Text}
	}
}

func (p *parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch {
		case p.acceptOp("+"):
			op = ast.Add
		case p.acceptOp("-"):
			op = ast.Sub
		default:
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch {
		case p.acceptOp("*"):
			op = ast.Mul
		case p.acceptOp("/"):
			op = ast.Div
		default:
			return left, nil
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: op, Left: left, Right: right}
	}
}

// parsePower is right-associative: a^b^c parses as a^(b^c).
func (p *parser) parsePower() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("^") {
		return left, nil
	}
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return ast.Binary{Op: ast.Pow, Left: left, Right: right}, nil
}

func (p *parser) parseUnary() (ast.Node, error) {
	if p.acceptOp("-") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Neg{Operand: operand}, nil
	}
	if p.acceptOp("+") {
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errExpected("expression")
	}
	switch tok.Kind {
	case token.Number:
		p.next()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &Error{Pos: tok.Pos, Expected: "number", Got: tok.Text}
		}
		return ast.Number{Value: v}, nil

	case token.Ident:
		p.next()
		if next, ok := p.peek(); !ok || next.Kind != token.ParenOpen {
			return ast.Variable{Name: tok.Text}, nil
		}
		return p.parseCall(tok.Text)

	case token.ParenOpen:
		p.next()
		e, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if next, ok := p.peek(); !ok || next.Kind != token.ParenClose {
			return nil, p.errExpected("')'")
		}
		p.next()
		return e, nil

	default:
		return nil, p.errExpected("expression")
	}
}

// parseCall parses a comma-separated, possibly empty argument list. The
// opening paren is the next token.
func (p *parser) parseCall(name string) (ast.Node, error) {
	p.next() // consume (
	if next, ok := p.peek(); ok && next.Kind == token.ParenClose {
		p.next()
		return ast.Call{Name: name}, nil
	}
	var args []ast.Node
	for {
		arg, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		next, ok := p.peek()
		if !ok {
			return nil, p.errExpected("',' or ')' in argument list")
		}
		switch next.Kind {
		case token.Comma:
			p.next()
		case token.ParenClose:
			p.next()
			return ast.Call{Name: name, Args: args}, nil
		default:
			return nil, p.errExpected("',' or ')' in argument list")
		}
	}
}
