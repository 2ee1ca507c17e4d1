// SPDX-License-Identifier: MIT

// Package ga - multivector text parser.
//
// Grammar:
//
//	expr   := [ '+' | '-' ] term { ( '+' | '-' ) term }
//	term   := factor { '*' factor }
//	factor := number | blade
//	blade  := basis { '^' basis }
//	basis  := 'e1' | 'e2' | 'e3' | 'e4'
//
// Numbers follow strconv.ParseFloat syntax without a sign ("2", ".5",
// "1e-07"); the words "Inf" and "NaN" read as non-finite numbers. A term
// holds at most one blade. Basis vectors may appear in any order; reordering into canonical order flips the sign as the algebra does
// (e2^e1 == -e1^e2). A repeated basis vector inside one blade is an error.
//
// A group mentioned by any term is structurally present in the result, even
// when its coefficients sum to zero.

package ga

import (
	"math"
	"strconv"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokBasis
	tokPlus
	tokMinus
	tokStar
	tokWedge
)

type token struct {
	kind  tokenKind
	pos   int
	text  string
	num   float64
	basis BasisBlade
}

type parser struct {
	src string
	pos int
	tok token
}

// Parse reads a multivector in the form produced by Format.
//
// Errors:
//   - ErrParse (wrapped with the byte offset) on malformed input.
func Parse(s string) (Multivector, error) {
	p := &parser{src: s}
	if err := p.next(); err != nil {
		return Multivector{}, err
	}
	if p.tok.kind == tokEOF {
		return Multivector{}, p.errorf("empty input")
	}

	var (
		coords  [NumBlades]float64
		present GradeUsage
		sign    = 1.0
	)
	switch p.tok.kind {
	case tokMinus:
		sign = -1
		fallthrough
	case tokPlus:
		if err := p.next(); err != nil {
			return Multivector{}, err
		}
	}
	for {
		coef, blade, err := p.term()
		if err != nil {
			return Multivector{}, err
		}
		coords[blade] += sign * coef
		present |= blade.Grade().Usage()

		switch p.tok.kind {
		case tokEOF:
			return fromBladeArray(present, &coords), nil
		case tokPlus:
			sign = 1
		case tokMinus:
			sign = -1
		default:
			return Multivector{}, p.errorf("unexpected %q", p.tok.text)
		}
		if err = p.next(); err != nil {
			return Multivector{}, err
		}
	}
}

// fromBladeArray packs a dense blade-indexed array into the groups of gu.
func fromBladeArray(gu GradeUsage, coords *[NumBlades]float64) Multivector {
	return build(gu, func(g Grade, dst []float64) {
		for i, b := range groupBlades[g] {
			dst[i] = coords[b]
		}
	})
}

// term parses factor { '*' factor } and returns its coefficient and blade.
func (p *parser) term() (float64, BasisBlade, error) {
	var (
		coef      = 1.0
		blade     BasisBlade
		haveBlade bool
	)
	for {
		switch p.tok.kind {
		case tokNumber:
			coef *= p.tok.num
			if err := p.next(); err != nil {
				return 0, 0, err
			}
		case tokBasis:
			if haveBlade {
				return 0, 0, p.errorf("second blade %q in one term", p.tok.text)
			}
			b, sign, err := p.blade()
			if err != nil {
				return 0, 0, err
			}
			blade, haveBlade = b, true
			coef *= sign
		default:
			return 0, 0, p.errorf("expected number or basis vector, got %q", p.tok.text)
		}
		if p.tok.kind != tokStar {
			return coef, blade, nil
		}
		if err := p.next(); err != nil {
			return 0, 0, err
		}
	}
}

// blade parses basis { '^' basis } into a canonical blade and its sign.
func (p *parser) blade() (BasisBlade, float64, error) {
	b, sign := p.tok.basis, 1.0
	if err := p.next(); err != nil {
		return 0, 0, err
	}
	for p.tok.kind == tokWedge {
		if err := p.next(); err != nil {
			return 0, 0, err
		}
		if p.tok.kind != tokBasis {
			return 0, 0, p.errorf("expected basis vector after '^', got %q", p.tok.text)
		}
		v := p.tok.basis
		if b&v != 0 {
			return 0, 0, p.errorf("repeated basis vector %q", p.tok.text)
		}
		sign *= reorderingSign(b, v)
		b |= v
		if err := p.next(); err != nil {
			return 0, 0, err
		}
	}
	return b, sign, nil
}

// next scans one token into p.tok.
func (p *parser) next() error {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start, text: "end of input"}
		return nil
	}
	c := p.src[p.pos]
	switch {
	case c == '+':
		p.pos++
		p.tok = token{kind: tokPlus, pos: start, text: "+"}
	case c == '-':
		p.pos++
		p.tok = token{kind: tokMinus, pos: start, text: "-"}
	case c == '*':
		p.pos++
		p.tok = token{kind: tokStar, pos: start, text: "*"}
	case c == '^':
		p.pos++
		p.tok = token{kind: tokWedge, pos: start, text: "^"}
	case isDigit(c) || c == '.':
		return p.scanNumber(start)
	case isLetter(c):
		return p.scanIdent(start)
	default:
		p.pos++
		p.tok = token{pos: start, text: string(c)}
		return p.errorf("unexpected character %q", c)
	}
	return nil
}

func (p *parser) scanNumber(start int) error {
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	// Exponent only when a digit follows "e", "e+" or "e-".
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		q := p.pos + 1
		if q < len(p.src) && (p.src[q] == '+' || p.src[q] == '-') {
			q++
		}
		if q < len(p.src) && isDigit(p.src[q]) {
			for q < len(p.src) && isDigit(p.src[q]) {
				q++
			}
			p.pos = q
		}
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	p.tok = token{kind: tokNumber, pos: start, text: text, num: v}
	if err != nil {
		return p.errorf("bad number %q", text)
	}
	return nil
}

func (p *parser) scanIdent(start int) error {
	for p.pos < len(p.src) && (isLetter(p.src[p.pos]) || isDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
		p.pos++
	}
	text := p.src[start:p.pos]
	p.tok = token{pos: start, text: text}
	switch text {
	case "Inf":
		p.tok.kind, p.tok.num = tokNumber, math.Inf(1)
		return nil
	case "NaN":
		p.tok.kind, p.tok.num = tokNumber, math.NaN()
		return nil
	}
	if len(text) == 2 && text[0] == 'e' && text[1] >= '1' && text[1] <= '0'+Dimension {
		p.tok.kind = tokBasis
		p.tok.basis = BasisBlade(1) << (text[1] - '1')
		return nil
	}
	return p.errorf("unknown identifier %q", text)
}

func (p *parser) errorf(format string, args ...any) error {
	return gaErrorf("Parse", "offset %d: "+format, ErrParse, append([]any{p.tok.pos}, args...)...)
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
