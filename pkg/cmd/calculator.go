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
package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-polyring/pkg/poly"
	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/ring/bls12_377"
	"github.com/consensys/go-polyring/pkg/ring/integer"
	"github.com/consensys/go-polyring/pkg/ring/modular"
	"github.com/consensys/go-polyring/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Calculator performs polynomial arithmetic over some fixed coefficient ring,
// reading polynomials from source files and writing them as text.  This hides
// the coefficient type from the commands.
type Calculator interface {
	// Normalise parses a polynomial and returns its normal form, either in
	// textual or S-expression form.
	Normalise(src *source.File, lisp bool) (string, error)
	// Eval parses a polynomial and evaluates it at a given integer point.
	Eval(src *source.File, at int64) (string, error)
	// DivMod parses two polynomials and divides the first by the second,
	// returning the quotient and remainder.
	DivMod(a, b *source.File) (string, string, error)
	// Gcd parses one or more polynomials and returns their monic gcd.
	Gcd(srcs ...*source.File) (string, error)
}

// RingInfo describes a coefficient ring which can be selected from the command
// line.
type RingInfo struct {
	// Name used to select the ring.
	Name string
	// Description of the ring.
	Description string
	// Construct a calculator over this ring for a given variable.
	build func(variable string) Calculator
}

// Rings lists the available coefficient rings.
var Rings = []RingInfo{
	{"int", "integers (64-bit, wrapping on overflow)", newCalculator[integer.Int64]},
	{"bls12-377", "scalar field of the BLS12-377 curve", newCalculator[bls12_377.Element]},
	{"z2", "integers modulo 2 (field)", newCalculator[modular.Z2]},
	{"z3", "integers modulo 3 (field)", newCalculator[modular.Z3]},
	{"z4", "integers modulo 4", newCalculator[modular.Z4]},
	{"z5", "integers modulo 5 (field)", newCalculator[modular.Z5]},
	{"z7", "integers modulo 7 (field)", newCalculator[modular.Z7]},
	{"z8", "integers modulo 8", newCalculator[modular.Z8]},
	{"z251", "integers modulo 251 (field)", newCalculator[modular.Z251]},
	{"z8209", "integers modulo 8209 (field)", newCalculator[modular.Z8209]},
}

// NewCalculator constructs a calculator for the named ring and a given
// variable.
func NewCalculator(name string, variable string) (Calculator, error) {
	index := slices.IndexFunc(Rings, func(r RingInfo) bool { return r.Name == name })
	//
	if index < 0 {
		names := make([]string, len(Rings))
		for i, r := range Rings {
			names[i] = r.Name
		}
		//
		return nil, fmt.Errorf("unknown ring \"%s\" (expected one of %s)", name, strings.Join(names, ", "))
	} else if variable == "" {
		return nil, errors.New("variable name cannot be empty")
	}
	//
	log.Debugf("using ring %s with variable %s", name, variable)
	//
	return Rings[index].build(variable), nil
}

type calculator[T ring.Invertible[T]] struct {
	variable string
}

func newCalculator[T ring.Invertible[T]](variable string) Calculator {
	return &calculator[T]{variable}
}

func (c *calculator[T]) Normalise(src *source.File, lisp bool) (string, error) {
	p, err := c.parse(src)
	if err != nil {
		return "", err
	} else if lisp {
		return p.Lisp(c.variable).String(), nil
	}
	//
	return p.Text(c.variable), nil
}

func (c *calculator[T]) Eval(src *source.File, at int64) (string, error) {
	p, err := c.parse(src)
	if err != nil {
		return "", err
	}
	//
	return p.Eval(ring.FromInt64[T](at)).String(), nil
}

func (c *calculator[T]) DivMod(a, b *source.File) (string, string, error) {
	var polys [2]poly.Polynomial[T]
	//
	for i, src := range []*source.File{a, b} {
		p, err := c.parse(src)
		if err != nil {
			return "", "", err
		}
		//
		polys[i] = p
	}
	//
	if polys[1].IsZero() {
		return "", "", ring.ErrDivisionByZero
	}
	//
	q, r, err := poly.DivMod(polys[0], polys[1])
	if err != nil {
		return "", "", err
	}
	//
	return q.Text(c.variable), r.Text(c.variable), nil
}

func (c *calculator[T]) Gcd(srcs ...*source.File) (string, error) {
	var g poly.Polynomial[T]
	//
	for _, src := range srcs {
		p, err := c.parse(src)
		if err != nil {
			return "", err
		}
		//
		if g, err = poly.Gcd(g, p); err != nil {
			return "", err
		}
	}
	//
	return g.Text(c.variable), nil
}

func (c *calculator[T]) parse(src *source.File) (poly.Polynomial[T], error) {
	p, errs := poly.ParseSource[T](src, c.variable)
	// Report the first error only
	if len(errs) > 0 {
		return p, &errs[0]
	}
	//
	log.Debugf("parsed %s as %s", src.Filename(), p.Text(c.variable))
	//
	return p, nil
}
