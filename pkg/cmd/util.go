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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-polyring/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure the log level, and construct the calculator selected by the
// "ring" and "var" flags.
func getCalculator(cmd *cobra.Command) Calculator {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	calc, err := NewCalculator(GetString(cmd, "ring"), GetString(cmd, "var"))
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return calc
}

// Construct one source file for each command-line argument.
func argumentFiles(args []string) []*source.File {
	var srcfiles = make([]*source.File, len(args))
	//
	for i, arg := range args {
		srcfiles[i] = source.NewSourceFile(fmt.Sprintf("arg%d", i+1), []byte(arg))
	}
	//
	return srcfiles
}

// Report an error and exit.
func exitWith(cmd *cobra.Command, err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(cmd.ErrOrStderr(), serr)
	} else {
		log.Error(err)
	}
	//
	os.Exit(3)
}

// Print an error, highlighting the offending text when it is a syntax error.
func printError(out io.Writer, err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(out, serr)
	} else {
		fmt.Fprintf(out, "error: %s\n", err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Print error + line number
	fmt.Fprintf(out, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", max(0, span.Start()-line.Start())))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", max(1, span.Length())))
}
