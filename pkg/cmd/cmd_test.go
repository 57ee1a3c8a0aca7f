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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/ring/bls12_377"
	"github.com/consensys/go-polyring/pkg/util/assert"
	"github.com/consensys/go-polyring/pkg/util/source"
)

func Test_Calculator_01(t *testing.T) {
	_, err := NewCalculator("z6", "x")
	assert.ErrorContains(t, err, "unknown ring")
	//
	_, err = NewCalculator("int", "")
	assert.True(t, err != nil)
	//
	for _, r := range Rings {
		calc, err := NewCalculator(r.Name, "x")
		assert.NoError(t, err)
		assert.True(t, calc != nil)
	}
}

func Test_Eval_01(t *testing.T) {
	checkEval(t, "int", "", false, "x^2 + -1", "(* (+ x 1) (- x 1))")
	checkEval(t, "int", "3", false, "8", "(* (+ x 1) (- x 1))")
	checkEval(t, "z7", "", false, "x", "(* 3 5 x)")
	checkEval(t, "z7", "2", false, "0", "(+ (^ x 2) 3)")
	checkEval(t, "int", "", true, "(+ (* 3 (^ x 2)) 1)", "(+ (* 3 x x) 1)")
	checkEval(t, "bls12-377", "0", false, bls12_377.New(-1).String(), "(- x 1)")
}

func Test_Eval_02(t *testing.T) {
	checkEval(t, "int", "", false, "x + 1\n2*x", "(+ x 1)", "(* 2 x)")
}

func Test_Eval_03(t *testing.T) {
	var out bytes.Buffer
	//
	calc, err := NewCalculator("int", "x")
	assert.NoError(t, err)
	//
	err = evaluate(&out, calc, argumentFiles([]string{"x"}), "three", false)
	assert.ErrorContains(t, err, "invalid point")
	//
	err = evaluate(&out, calc, argumentFiles([]string{"(+ y 1)"}), "", false)
	assert.ErrorContains(t, err, "unknown symbol")
}

func Test_DivMod_01(t *testing.T) {
	var out bytes.Buffer
	//
	calc, err := NewCalculator("z7", "x")
	assert.NoError(t, err)
	//
	srcs := argumentFiles([]string{"(+ (^ x 3) (* 2 x) 5)", "(+ (* 3 x) 1)"})
	assert.NoError(t, divide(&out, calc, srcs[0], srcs[1]))
	assert.Equal(t, "quotient: 5*x^2 + 3*x + 2\nremainder: 3\n", out.String())
}

func Test_DivMod_02(t *testing.T) {
	calc, err := NewCalculator("int", "x")
	assert.NoError(t, err)
	//
	srcs := argumentFiles([]string{"(^ x 2)", "(* 2 x)", "(- x x)"})
	//
	_, _, err = calc.DivMod(srcs[0], srcs[1])
	assert.ErrorIs(t, err, ring.ErrNotInvertible)
	//
	_, _, err = calc.DivMod(srcs[0], srcs[2])
	assert.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func Test_Gcd_01(t *testing.T) {
	calc, err := NewCalculator("z7", "x")
	assert.NoError(t, err)
	//
	g, err := calc.Gcd(argumentFiles([]string{"(* (+ x 1) (+ x 2))", "(* (+ x 1) (+ x 3))"})...)
	assert.NoError(t, err)
	assert.Equal(t, "x + 1", g)
	//
	g, err = calc.Gcd(argumentFiles([]string{"(* 3 (+ x 4))"})...)
	assert.NoError(t, err)
	assert.Equal(t, "x + 4", g)
}

func Test_Repl_01(t *testing.T) {
	var out bytes.Buffer
	//
	calc, err := NewCalculator("int", "x")
	assert.NoError(t, err)
	//
	in := strings.NewReader("(+ x 1)\n\n; comment\n(+ y 1)\n(* x x)\n:q\n(+ x 2)\n")
	assert.NoError(t, repl(in, &out, calc))
	assert.Equal(t, "x + 1\nline4:1: unknown symbol\n(+ y 1)\n   ^\nx^2\n", out.String())
}

func Test_Repl_02(t *testing.T) {
	var out bytes.Buffer
	//
	calc, err := NewCalculator("z5", "t")
	assert.NoError(t, err)
	// End-of-file terminates the loop
	assert.NoError(t, repl(strings.NewReader("(* 2 3 t)"), &out, calc))
	assert.Equal(t, "t\n", out.String())
}

func Test_SyntaxError_01(t *testing.T) {
	var (
		out     bytes.Buffer
		srcfile = source.NewSourceFile("test", []byte("(+ 1\n   (foo x))"))
		err     = srcfile.SyntaxError(source.NewSpan(9, 12), "unknown operator")
	)
	//
	printSyntaxError(&out, err)
	assert.Equal(t, "test:2: unknown operator\n   (foo x))\n    ^^^\n", out.String())
}

func Test_Command_01(t *testing.T) {
	var out bytes.Buffer
	//
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"rings"})
	assert.NoError(t, rootCmd.Execute())
	assert.True(t, strings.Contains(out.String(), "bls12-377"))
	assert.True(t, strings.Contains(out.String(), "z8209"))
}

func Test_Command_02(t *testing.T) {
	var out bytes.Buffer
	//
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"eval", "--ring", "z4", "--var", "x", "(* (+ 1 (* 3 x) (* 2 (^ x 3))) (+ 3 x))"})
	assert.NoError(t, rootCmd.Execute())
	assert.Equal(t, "2*x^4 + 2*x^3 + 3*x^2 + 2*x + 3\n", out.String())
}

// =========================================================================================

func checkEval(t *testing.T, ringName string, at string, lisp bool, expected string, inputs ...string) {
	t.Helper()
	//
	var out bytes.Buffer
	//
	calc, err := NewCalculator(ringName, "x")
	assert.NoError(t, err)
	//
	assert.NoError(t, evaluate(&out, calc, argumentFiles(inputs), at, lisp))
	assert.Equal(t, expected+"\n", out.String())
}
