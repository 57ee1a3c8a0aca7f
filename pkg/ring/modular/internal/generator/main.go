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
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-polyring")

	specs := []moduliSpec{
		{Modulus: 2},
		{Modulus: 3},
		{Modulus: 4},
		{Modulus: 5},
		{Modulus: 7},
		{Modulus: 8},
		{Modulus: 251},
		{Modulus: 8209},
	}

	cfg, err := config(specs)
	assertNoError(err, "for moduli")

	assertNoError(bgen.Generate(cfg, "modular", "templates",
		bavard.Entry{
			File:      "../../moduli.go",
			Templates: []string{"moduli.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../moduli_test.go",
			Templates: []string{"moduli.test.go.tmpl"},
		},
	), "for moduli")
	// run gofmt on whole package
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type moduliSpec struct {
	Modulus uint64
}

type moduliConfig struct {
	moduliSpec
	// Prime indicates Z/nZ is a field.
	Prime bool
	// Units counts the invertible elements of Z/nZ, i.e. Euler's totient of n.
	Units uint64
}

type generatorConfig struct {
	Moduli []moduliConfig
}

func config(specs []moduliSpec) (*generatorConfig, error) {
	var cfg generatorConfig
	//
	for _, spec := range specs {
		if spec.Modulus < 2 {
			return nil, fmt.Errorf("modulus %d must be at least 2", spec.Modulus)
		} else if spec.Modulus > 1<<16 {
			// The generated tests are exhaustive.
			return nil, fmt.Errorf("modulus %d too large", spec.Modulus)
		}
		//
		n := new(big.Int).SetUint64(spec.Modulus)
		//
		cfg.Moduli = append(cfg.Moduli, moduliConfig{
			moduliSpec: spec,
			Prime:      n.ProbablyPrime(20),
			Units:      totient(spec.Modulus),
		})
	}
	//
	return &cfg, nil
}

// Count the naturals below n which are coprime with n.
func totient(n uint64) uint64 {
	var (
		count uint64
		gcd   big.Int
		x, m  = new(big.Int), new(big.Int).SetUint64(n)
	)
	//
	for i := uint64(1); i < n; i++ {
		if gcd.GCD(nil, nil, x.SetUint64(i), m); gcd.IsUint64() && gcd.Uint64() == 1 {
			count++
		}
	}
	//
	return count
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
