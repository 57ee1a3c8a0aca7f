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
	"strings"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/util/source/sexp"
)

// DefaultVariable is the variable name used by String.
const DefaultVariable = "x"

func (p Polynomial[T]) String() string {
	return p.Text(DefaultVariable)
}

// Text returns a human readable representation of this polynomial in a given
// variable, with terms arranged by descending degree.  For example, the
// polynomial New(1,0,3) is rendered as "3*x^2 + 1".
func (p Polynomial[T]) Text(variable string) string {
	var builder strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := p.degree + 1; i > 0; i-- {
		c := p.Coeff(i - 1)
		//
		if c.IsZero() {
			continue
		} else if builder.Len() > 0 {
			builder.WriteString(" + ")
		}
		//
		builder.WriteString(termText(c, i-1, variable))
	}
	//
	return builder.String()
}

func termText[T ring.Element[T]](c T, power uint, variable string) string {
	var (
		coeff = c.String()
		x     = variable
	)
	// Nested polynomials need brackets
	if strings.ContainsRune(coeff, ' ') {
		coeff = "(" + coeff + ")"
	}
	//
	switch {
	case power == 0:
		return coeff
	case power > 1:
		x = x + "^" + strconv.FormatUint(uint64(power), 10)
	}
	//
	if ring.IsOne(c) {
		return x
	}
	//
	return coeff + "*" + x
}

// Lisp returns this polynomial in a given variable as an S-expression.  For
// example, New(1,0,3) becomes (+ (* 3 (^ x 2)) 1).  Coefficients are written
// as symbols using their String representation, hence the result can be read
// back by a Parser whenever coefficients print as decimal integers (of any
// length).
func (p Polynomial[T]) Lisp(variable string) sexp.SExp {
	var terms []sexp.SExp
	//
	for i := p.degree + 1; i > 0; i-- {
		if c := p.Coeff(i - 1); !c.IsZero() {
			terms = append(terms, termLisp(c, i-1, variable))
		}
	}
	//
	switch len(terms) {
	case 0:
		return sexp.NewSymbol("0")
	case 1:
		return terms[0]
	default:
		return sexp.NewList(append([]sexp.SExp{sexp.NewSymbol("+")}, terms...))
	}
}

func termLisp[T ring.Element[T]](c T, power uint, variable string) sexp.SExp {
	var x sexp.SExp = sexp.NewSymbol(variable)
	//
	if power == 0 {
		return sexp.NewSymbol(c.String())
	} else if power > 1 {
		n := sexp.NewSymbol(strconv.FormatUint(uint64(power), 10))
		x = sexp.NewList([]sexp.SExp{sexp.NewSymbol("^"), x, n})
	}
	//
	if ring.IsOne(c) {
		return x
	}
	//
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("*"), sexp.NewSymbol(c.String()), x})
}
