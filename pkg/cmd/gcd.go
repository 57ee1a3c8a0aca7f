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
	"fmt"

	"github.com/consensys/go-polyring/pkg/util"
	"github.com/spf13/cobra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] expression(s)",
	Short: "compute the greatest common divisor of polynomials.",
	Long: `Compute the monic greatest common divisor of one or more polynomials using the
	 Euclidean algorithm.  This is always possible over a field, but may fail over
	 other rings.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		calc := getCalculator(cmd)
		stats := util.NewPerfStats()
		//
		g, err := calc.Gcd(argumentFiles(args)...)
		if err != nil {
			exitWith(cmd, err)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), g)
		stats.Log("Gcd")
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
}
