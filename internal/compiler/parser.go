// Package compiler converts Boolean expression text into domain.SOP values.
// The accepted grammar is sum-of-products only: product terms of literals
// joined by '|', with '~' for negation, '&' for conjunction, parentheses for
// grouping, and the constants "0" and "1".
package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/boolnet/pkg/domain"
)

// Parser is responsible for converting expression text into a domain.SOP.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a single expression. Errors wrap domain.ErrMalformedInput.
func (p *Parser) Parse(src string) (domain.SOP, error) {
	trimmed := strings.TrimSpace(src)
	switch trimmed {
	case "":
		return domain.SOP{}, fmt.Errorf("%w: empty expression", domain.ErrMalformedInput)
	case "0":
		return domain.ConstFalse(), nil
	case "1":
		return domain.ConstTrue(), nil
	}

	lex := &lexer{src: trimmed}
	var terms []domain.Term
	for {
		term, err := parseTerm(lex)
		if err != nil {
			return domain.SOP{}, err
		}
		terms = append(terms, term)

		tok, err := lex.next()
		if err != nil {
			return domain.SOP{}, err
		}
		if tok.kind == tokEOF {
			return domain.SOP{Terms: terms}, nil
		}
		if tok.kind != tokOr {
			return domain.SOP{}, fmt.Errorf("%w: unexpected %q in %q", domain.ErrMalformedInput, tok.text, src)
		}
	}
}

// ParseSet decodes a variable-name -> expression mapping and validates the
// resulting set (contiguous names, no undefined variable references).
func (p *Parser) ParseSet(exprs map[string]string) (domain.FunctionSet, error) {
	fs := make(domain.FunctionSet, len(exprs))
	for name, src := range exprs {
		f, err := p.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", name, err)
		}
		fs[name] = f
	}
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	return fs, nil
}

// parseTerm reads one product term: factors joined by '&'. A factor is a
// literal or a parenthesized sub-term; an '|' inside parentheses would break
// the SOP shape and is rejected.
func parseTerm(lex *lexer) (domain.Term, error) {
	var term domain.Term
	for {
		factor, err := parseFactor(lex)
		if err != nil {
			return nil, err
		}
		term = append(term, factor...)

		save := *lex
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokAnd {
			*lex = save
			return term, nil
		}
	}
}

func parseFactor(lex *lexer) (domain.Term, error) {
	tok, err := lex.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokNot:
		inner, err := lex.next()
		if err != nil {
			return nil, err
		}
		if inner.kind != tokVar {
			return nil, fmt.Errorf("%w: '~' must be followed by a variable, got %q", domain.ErrMalformedInput, inner.text)
		}
		idx := domain.VarIndex(inner.text)
		if idx < 0 {
			return nil, fmt.Errorf("%w: bad variable name %q", domain.ErrMalformedInput, inner.text)
		}
		return domain.Term{{Var: idx, Negated: true}}, nil
	case tokVar:
		idx := domain.VarIndex(tok.text)
		if idx < 0 {
			return nil, fmt.Errorf("%w: bad variable name %q", domain.ErrMalformedInput, tok.text)
		}
		return domain.Term{{Var: idx}}, nil
	case tokLParen:
		inner, err := parseTerm(lex)
		if err != nil {
			return nil, err
		}
		closing, err := lex.next()
		if err != nil {
			return nil, err
		}
		if closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')', got %q", domain.ErrMalformedInput, closing.text)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q", domain.ErrMalformedInput, tok.text)
	}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokVar
	tokNot
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, text: "end of expression"}, nil
	}
	c := l.src[l.pos]
	switch c {
	case '~':
		l.pos++
		return token{kind: tokNot, text: "~"}, nil
	case '&':
		l.pos++
		return token{kind: tokAnd, text: "&"}, nil
	case '|':
		l.pos++
		return token{kind: tokOr, text: "|"}, nil
	case '(':
		l.pos++
		return token{kind: tokLParen, text: "("}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, text: ")"}, nil
	}
	if isIdentChar(c) {
		start := l.pos
		for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokVar, text: l.src[start:l.pos]}, nil
	}
	return token{}, fmt.Errorf("%w: unexpected character %q", domain.ErrMalformedInput, string(c))
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
