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
	"io"

	"github.com/consensys/go-polyring/pkg/util"
	"github.com/consensys/go-polyring/pkg/util/source"
	"github.com/spf13/cobra"
)

var divmodCmd = &cobra.Command{
	Use:   "divmod [flags] dividend divisor",
	Short: "divide one polynomial by another.",
	Long: `Perform Euclidean division of one polynomial by another, printing the quotient
	 and remainder.  This fails when the leading coefficient of the divisor has no
	 inverse in the coefficient ring.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		calc := getCalculator(cmd)
		stats := util.NewPerfStats()
		srcs := argumentFiles(args)
		//
		if err := divide(cmd.OutOrStdout(), calc, srcs[0], srcs[1]); err != nil {
			exitWith(cmd, err)
		}
		//
		stats.Log("Division")
	},
}

func divide(out io.Writer, calc Calculator, a, b *source.File) error {
	q, r, err := calc.DivMod(a, b)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(out, "quotient: %s\n", q)
	fmt.Fprintf(out, "remainder: %s\n", r)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(divmodCmd)
}
