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
	"strconv"

	"github.com/consensys/go-polyring/pkg/util"
	"github.com/consensys/go-polyring/pkg/util/source"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression(s)",
	Short: "normalise or evaluate polynomial expressions.",
	Long: `Read one or more polynomial expressions written as S-expressions, such as
	 "(* (+ x 1) (- x 1))", and print each in normal form.  When a point is given,
	 each polynomial is instead evaluated at that point.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		calc := getCalculator(cmd)
		stats := util.NewPerfStats()
		//
		err := evaluate(cmd.OutOrStdout(), calc, argumentFiles(args), GetString(cmd, "at"), GetFlag(cmd, "lisp"))
		if err != nil {
			exitWith(cmd, err)
		}
		//
		stats.Log("Evaluation")
	},
}

// Normalise (or evaluate) each polynomial in turn, printing one result per line.
// An empty point indicates no evaluation.
func evaluate(out io.Writer, calc Calculator, srcs []*source.File, at string, lisp bool) error {
	var (
		point int64
		err   error
	)
	//
	if at != "" {
		if point, err = strconv.ParseInt(at, 10, 64); err != nil {
			return fmt.Errorf("invalid point \"%s\"", at)
		}
	}
	//
	for _, src := range srcs {
		var result string
		//
		if at != "" {
			result, err = calc.Eval(src, point)
		} else {
			result, err = calc.Normalise(src, lisp)
		}
		//
		if err != nil {
			return err
		}
		//
		fmt.Fprintln(out, result)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("at", "", "evaluate at the given integer point")
	evalCmd.Flags().Bool("lisp", false, "print polynomials as S-expressions")
}
