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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-polyring/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactively normalise polynomial expressions.",
	Long: `Start an interactive session in which each line read is parsed as a polynomial
	 expression and printed in normal form.  Enter ":q" (or end-of-file) to quit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			calc = getCalculator(cmd)
			err  error
		)
		//
		if term.IsTerminal(int(os.Stdin.Fd())) {
			err = interactiveRepl(calc)
		} else {
			err = repl(cmd.InOrStdin(), cmd.OutOrStdout(), calc)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// LineReader reads one line at a time.
type LineReader interface {
	// ReadLine returns the next line, or io.EOF when there are none.
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (p scannerReader) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Run the read-eval-print loop over a plain input stream, such as a pipe.
func repl(in io.Reader, out io.Writer, calc Calculator) error {
	return loop(scannerReader{bufio.NewScanner(in)}, out, calc)
}

// Run the read-eval-print loop on the terminal, which is placed in raw mode
// for line editing.
func interactiveRepl(calc Calculator) error {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	//
	defer func() {
		if err := term.Restore(int(os.Stdin.Fd()), state); err != nil {
			log.Error(err)
		}
	}()
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	terminal := term.NewTerminal(screen, "> ")
	//
	return loop(terminal, terminal, calc)
}

func loop(in LineReader, out io.Writer, calc Calculator) error {
	for count := 1; ; count++ {
		line, err := in.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch {
		case line == ":q":
			return nil
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		}
		//
		src := source.NewSourceFile(fmt.Sprintf("line%d", count), []byte(line))
		//
		if result, err := calc.Normalise(src, false); err != nil {
			printError(out, err)
		} else {
			fmt.Fprintln(out, result)
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
