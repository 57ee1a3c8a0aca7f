// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"strconv"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/util/source"
	"github.com/consensys/go-polyring/pkg/util/source/sexp"
)

// MaxPowerDegree bounds the degree of any power (^ p n) read by a Parser, where
// p is not constant.  Powers of constants are unrestricted.
const MaxPowerDegree = 1 << 14

// Parser is responsible for parsing S-expressions into polynomials over a
// single variable.  The following forms are recognised:
//
//	42          integer literal
//	x           the variable
//	(+ p q ...) sum
//	(- p)       negation
//	(- p q ...) difference
//	(* p q ...) product
//	(^ p n)     power, where n is a natural literal and deg(p)*n <= MaxPowerDegree
//	(/ p q)     quotient of long division
//	(% p q)     remainder of long division
//	(d p)       formal derivative
type Parser[T ring.Invertible[T]] struct {
	// Maps S-Expressions to their spans in the original source file.  This is
	// used for reporting syntax errors.
	srcmap *source.Map[sexp.SExp]
	// Name of the variable
	variable string
}

// NewParser constructs a new parser for a given source map and variable.
func NewParser[T ring.Invertible[T]](srcmap *source.Map[sexp.SExp], variable string) *Parser[T] {
	return &Parser[T]{srcmap, variable}
}

// Parse a given S-expression into a polynomial, or produce one or more syntax
// errors.
func (p *Parser[T]) Parse(expr sexp.SExp) (Polynomial[T], []source.SyntaxError) {
	return p.parsePoly(expr)
}

// ParseString reads a polynomial in a given variable from a string.
func ParseString[T ring.Invertible[T]](input string, variable string) (Polynomial[T], []source.SyntaxError) {
	return ParseSource[T](source.NewSourceFile("input", []byte(input)), variable)
}

// ParseSource reads a polynomial in a given variable from a source file.
func ParseSource[T ring.Invertible[T]](srcfile *source.File, variable string) (Polynomial[T], []source.SyntaxError) {
	expr, srcmap, err := sexp.Parse(srcfile)
	if err != nil {
		return Polynomial[T]{}, []source.SyntaxError{*err}
	}
	//
	return NewParser[T](srcmap, variable).Parse(expr)
}

func (p *Parser[T]) parsePoly(expr sexp.SExp) (Polynomial[T], []source.SyntaxError) {
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e)
	case *sexp.List:
		return p.parseList(e)
	default:
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(expr, "unknown term")
	}
}

func (p *Parser[T]) parseSymbol(symbol *sexp.Symbol) (Polynomial[T], []source.SyntaxError) {
	if symbol.Value == p.variable {
		return Monomial(ring.One[T](), 1), nil
	}
	//
	val, ok := ring.FromDecimal[T](symbol.Value)
	if !ok {
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(symbol, "unknown symbol")
	}
	//
	return Constant(val), nil
}

func (p *Parser[T]) parseList(list *sexp.List) (Polynomial[T], []source.SyntaxError) {
	var (
		poly Polynomial[T]
		args = list.Elements[1:]
	)
	//
	if list.Len() <= 1 {
		return poly, p.srcmap.SyntaxErrors(list, "malformed expression")
	} else if list.Head() == nil {
		return poly, p.srcmap.SyntaxErrors(list.Get(0), "expected operator")
	}
	//
	switch list.Head().Value {
	case "+":
		return p.foldList(args, Polynomial[T].Add)
	case "-":
		if len(args) == 1 {
			arg, errs := p.parsePoly(args[0])
			return arg.Neg(), errs
		}
		//
		return p.foldList(args, Polynomial[T].Sub)
	case "*":
		return p.foldList(args, Polynomial[T].Mul)
	case "^":
		return p.parsePow(list)
	case "/", "%":
		return p.parseDivision(list)
	case "d":
		if len(args) != 1 {
			return poly, p.srcmap.SyntaxErrors(list, "expected exactly one argument")
		}
		//
		arg, errs := p.parsePoly(args[0])
		//
		return arg.Derivative(), errs
	default:
		// problem
		return poly, p.srcmap.SyntaxErrors(list.Get(0), "unknown operator")
	}
}

func (p *Parser[T]) parsePow(list *sexp.List) (Polynomial[T], []source.SyntaxError) {
	if list.Len() != 3 {
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(list, "expected exactly two arguments")
	}
	//
	base, errs := p.parsePoly(list.Get(1))
	exponent := list.Get(2).AsSymbol()
	//
	if exponent == nil {
		errs = append(errs, p.srcmap.SyntaxErrors(list.Get(2), "expected natural exponent")...)
	} else if n, err := strconv.ParseUint(exponent.Value, 10, 64); err != nil {
		errs = append(errs, p.srcmap.SyntaxErrors(exponent, "invalid exponent")...)
	} else if len(errs) == 0 && !base.IsConstant() && n > MaxPowerDegree/uint64(base.Deg()) {
		errs = append(errs, p.srcmap.SyntaxErrors(exponent, "exponent too large")...)
	} else if len(errs) == 0 {
		return base.Pow(n), nil
	}
	//
	return Polynomial[T]{}, errs
}

func (p *Parser[T]) parseDivision(list *sexp.List) (Polynomial[T], []source.SyntaxError) {
	if list.Len() != 3 {
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(list, "expected exactly two arguments")
	}
	//
	lhs, errs1 := p.parsePoly(list.Get(1))
	rhs, errs2 := p.parsePoly(list.Get(2))
	//
	if errs := append(errs1, errs2...); len(errs) > 0 {
		return Polynomial[T]{}, errs
	} else if rhs.IsZero() {
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(list.Get(2), ring.ErrDivisionByZero.Error())
	}
	//
	quot, rem, err := DivMod(lhs, rhs)
	//
	switch {
	case err != nil:
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(list, err.Error())
	case list.Head().Value == "/":
		return quot, nil
	default:
		return rem, nil
	}
}

func (p *Parser[T]) foldList(elements []sexp.SExp, op func(Polynomial[T], Polynomial[T]) Polynomial[T]) (
	Polynomial[T], []source.SyntaxError) {
	var res Polynomial[T]
	// Fold over each element
	for i := 0; i < len(elements); i++ {
		if poly, errs := p.parsePoly(elements[i]); len(errs) > 0 {
			return res, errs
		} else if i == 0 {
			res = poly
		} else {
			res = op(res, poly)
		}
	}
	//
	return res, nil
}
